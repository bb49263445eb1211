package expense

import (
	"context"
)

// Repository define las operaciones de persistencia para gastos
type Repository interface {
	// Create persiste un nuevo gasto
	Create(ctx context.Context, e *Expense) error

	// FindByID busca un gasto por su ID
	FindByID(ctx context.Context, id string) (*Expense, error)

	// Delete elimina un gasto
	Delete(ctx context.Context, id string) error

	// ListByBranchAndDate retorna los gastos de una sucursal en un día.
	// Alimenta la conciliación del turno de ese día
	ListByBranchAndDate(ctx context.Context, branchID, date string) ([]*Expense, error)

	// ListByBranch retorna una lista paginada de gastos de una sucursal
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Expense, error)

	// CountByBranch retorna el total de gastos de una sucursal
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
