package branch

import (
	"context"
)

// Repository define las operaciones de persistencia para sucursales
type Repository interface {
	// Create persiste una nueva sucursal
	Create(ctx context.Context, branch *Branch) error

	// FindByID busca una sucursal por su ID
	FindByID(ctx context.Context, id string) (*Branch, error)

	// FindByTenantAndID busca una sucursal por tenant y por ID
	FindByTenantAndID(ctx context.Context, tenantID, id string) (*Branch, error)

	// FindMainBranch busca la sucursal principal de un tenant
	FindMainBranch(ctx context.Context, tenantID string) (*Branch, error)

	// Update actualiza una sucursal existente
	Update(ctx context.Context, branch *Branch) error

	// Delete elimina una sucursal
	Delete(ctx context.Context, id string) error

	// ListByTenant retorna una lista paginada de sucursales de un tenant
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*Branch, error)

	// CountByTenant retorna el total de sucursales de un tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)

	// UpdateStatus actualiza el estado de una sucursal
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Exists verifica si una sucursal existe por su ID
	Exists(ctx context.Context, id string) (bool, error)
}
