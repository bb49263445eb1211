package sale

import (
	"context"
)

// Repository define las operaciones de persistencia para ventas
type Repository interface {
	// Create persiste una nueva venta con sus líneas y sub-pagos
	Create(ctx context.Context, s *Sale) error

	// FindByID busca una venta por su ID, con líneas y sub-pagos
	FindByID(ctx context.Context, id string) (*Sale, error)

	// ListByBranchAndDate retorna las ventas de una sucursal en un día.
	// Alimenta la conciliación del turno de ese día
	ListByBranchAndDate(ctx context.Context, branchID, date string) ([]*Sale, error)

	// ListByBranch retorna una lista paginada de ventas de una sucursal
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Sale, error)

	// CountDirectByBranchAndDate cuenta las ventas de mostrador (sin cita)
	// de una sucursal en un día
	CountDirectByBranchAndDate(ctx context.Context, branchID, date string) (int, error)

	// CountByBranch retorna el total de ventas de una sucursal
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
