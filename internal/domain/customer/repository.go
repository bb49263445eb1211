package customer

import (
	"context"
)

// Repository define las operaciones de persistencia para clientes
type Repository interface {
	// Create persiste un nuevo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca un cliente por su ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// Update actualiza un cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete elimina un cliente
	Delete(ctx context.Context, id string) error

	// ListByTenant retorna una lista paginada de clientes de un tenant
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*Customer, error)

	// SearchByNameOrPhone busca clientes por coincidencia de nombre o teléfono
	SearchByNameOrPhone(ctx context.Context, tenantID, query string, limit int) ([]*Customer, error)

	// CountByTenant retorna el total de clientes de un tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}
