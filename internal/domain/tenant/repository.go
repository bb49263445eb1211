package tenant

import (
	"context"
)

// Repository define las operaciones de persistencia para tenants
type Repository interface {
	// Create persiste un nuevo tenant
	Create(ctx context.Context, t *Tenant) error

	// FindByID busca un tenant por su ID
	FindByID(ctx context.Context, id string) (*Tenant, error)

	// FindByDocument busca un tenant por su documento
	FindByDocument(ctx context.Context, document string) (*Tenant, error)

	// List retorna una lista paginada de tenants
	List(ctx context.Context, limit, offset int) ([]*Tenant, error)

	// Update actualiza un tenant existente
	Update(ctx context.Context, t *Tenant) error

	// Delete elimina un tenant
	Delete(ctx context.Context, id string) error

	// UpdateStatus actualiza el estado de un tenant
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Count retorna el total de tenants
	Count(ctx context.Context) (int, error)

	// Exists verifica si un tenant existe por su ID
	Exists(ctx context.Context, id string) (bool, error)

	// ExistsByDocument verifica si un tenant existe por su documento
	ExistsByDocument(ctx context.Context, document string) (bool, error)
}
