package purchase

import (
	"context"
)

// Repository define las operaciones de persistencia para compras
type Repository interface {
	// Create persiste una nueva compra con sus líneas
	Create(ctx context.Context, p *Purchase) error

	// FindByID busca una compra por su ID, con sus líneas
	FindByID(ctx context.Context, id string) (*Purchase, error)

	// UpdateStatus persiste la transición de estado de la compra
	UpdateStatus(ctx context.Context, p *Purchase) error

	// ListByBranchAndDate retorna las compras recibidas de una sucursal en
	// un día. Alimenta la conciliación del turno de ese día
	ListByBranchAndDate(ctx context.Context, branchID, date string) ([]*Purchase, error)

	// ListByBranch retorna una lista paginada de compras de una sucursal
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Purchase, error)

	// CountByBranch retorna el total de compras de una sucursal
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
