package shift

import (
	"context"
)

// Repository define las operaciones de persistencia para turnos
type Repository interface {
	// Create persiste un nuevo turno
	Create(ctx context.Context, shift *Shift) error

	// FindByID busca un turno por su ID
	FindByID(ctx context.Context, id string) (*Shift, error)

	// FindOpenByBranch busca el turno abierto de una sucursal, si existe
	FindOpenByBranch(ctx context.Context, branchID string) (*Shift, error)

	// Close persiste el cierre del turno. La implementación solo debe
	// afectar turnos en estado abierto y reportar ErrShiftAlreadyClosed
	// cuando el turno ya estaba cerrado (dos cierres concurrentes no deben
	// producir dos cortes)
	Close(ctx context.Context, shift *Shift) error

	// ListByBranch retorna una lista paginada de turnos de una sucursal
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*Shift, error)

	// ListPendingCut retorna los turnos cerrados que aún no tienen corte
	ListPendingCut(ctx context.Context, branchID string) ([]*Shift, error)

	// CountByBranch retorna el total de turnos de una sucursal
	CountByBranch(ctx context.Context, branchID string) (int, error)
}

// CashCutRepository define las operaciones de persistencia para cortes
type CashCutRepository interface {
	// Create persiste un nuevo corte. Un turno admite a lo más un corte
	Create(ctx context.Context, cut *CashCut) error

	// FindByShiftID busca el corte de un turno
	FindByShiftID(ctx context.Context, shiftID string) (*CashCut, error)

	// ExistsForShift verifica si un turno ya tiene corte
	ExistsForShift(ctx context.Context, shiftID string) (bool, error)

	// ListByBranch retorna una lista paginada de cortes de una sucursal
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*CashCut, error)

	// CountByBranch retorna el total de cortes de una sucursal
	CountByBranch(ctx context.Context, branchID string) (int, error)
}
