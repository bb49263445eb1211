package appointment

import (
	"context"
)

// Repository define las operaciones de persistencia para citas
type Repository interface {
	// Create persiste una nueva cita
	Create(ctx context.Context, a *Appointment) error

	// FindByID busca una cita por su ID, con sus líneas
	FindByID(ctx context.Context, id string) (*Appointment, error)

	// Update actualiza una cita existente, reemplazando sus líneas
	Update(ctx context.Context, a *Appointment) error

	// Delete elimina una cita
	Delete(ctx context.Context, id string) error

	// ListByBranchAndDate retorna las citas de una sucursal en un día
	ListByBranchAndDate(ctx context.Context, branchID, date string) ([]*Appointment, error)

	// ListByBranch retorna una lista paginada de citas de una sucursal
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Appointment, error)

	// CountCompletedByBranchAndDate cuenta las citas completadas de una
	// sucursal en un día. Alimenta el resumen del turno
	CountCompletedByBranchAndDate(ctx context.Context, branchID, date string) (int, error)

	// CountByBranch retorna el total de citas de una sucursal
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
