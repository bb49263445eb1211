package catalog

import (
	"context"
)

// ServiceRepository define las operaciones de persistencia para servicios
type ServiceRepository interface {
	// Create persiste un nuevo servicio
	Create(ctx context.Context, s *Service) error

	// FindByID busca un servicio por su ID
	FindByID(ctx context.Context, id string) (*Service, error)

	// Update actualiza un servicio existente
	Update(ctx context.Context, s *Service) error

	// Delete elimina un servicio
	Delete(ctx context.Context, id string) error

	// ListByTenant retorna una lista paginada de servicios de un tenant
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*Service, error)

	// ListActive retorna los servicios activos de un tenant, sin paginar.
	// Alimenta las listas de candidatos del editor de líneas
	ListActive(ctx context.Context, tenantID string) ([]*Service, error)

	// CountByTenant retorna el total de servicios de un tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}

// ProductRepository define las operaciones de persistencia para productos
type ProductRepository interface {
	// Create persiste un nuevo producto
	Create(ctx context.Context, p *Product) error

	// FindByID busca un producto por su ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// Update actualiza un producto existente
	Update(ctx context.Context, p *Product) error

	// Delete elimina un producto
	Delete(ctx context.Context, id string) error

	// ListByTenant retorna una lista paginada de productos de un tenant
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*Product, error)

	// ListActive retorna los productos activos de un tenant, sin paginar
	ListActive(ctx context.Context, tenantID string) ([]*Product, error)

	// AdjustStock suma delta (positivo o negativo) a las existencias.
	// Las existencias pueden quedar negativas; no se bloquea la venta
	AdjustStock(ctx context.Context, id string, delta int) error

	// CountByTenant retorna el total de productos de un tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}
