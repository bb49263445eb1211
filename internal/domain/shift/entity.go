package shift

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBranchID      = errors.New("ID de la sucursal no puede ser vacío")
	ErrEmptyUserID        = errors.New("ID del usuario no puede ser vacío")
	ErrEmptyDate          = errors.New("fecha del turno no puede ser vacía")
	ErrShiftAlreadyClosed = errors.New("el turno ya está cerrado")
	ErrShiftNotClosed     = errors.New("el turno aún no está cerrado")
	ErrCashCountRequired  = errors.New("se requiere el conteo de efectivo para cerrar el turno")
)

// Status representa el estado del turno
type Status string

const (
	StatusOpen   Status = "abierto"
	StatusClosed Status = "cerrado"
)

// Shift representa un turno de trabajo: una sesión con fondo de caja
// inicial, ligada a un responsable y a un día de una sucursal
type Shift struct {
	ID          string           `json:"id"`
	BranchID    string           `json:"branch_id"`
	UserID      string           `json:"user_id"`
	Date        string           `json:"date"` // día calendario, formato YYYY-MM-DD
	StartTime   time.Time        `json:"start_time"`
	InitialCash decimal.Decimal  `json:"initial_cash"`
	Status      Status           `json:"status"`
	FinalCash   *decimal.Decimal `json:"final_cash,omitempty"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewShift abre un nuevo turno con el fondo de caja indicado
func NewShift(branchID, userID, date string, initialCash decimal.Decimal) (*Shift, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if userID == "" {
		return nil, ErrEmptyUserID
	}

	if date == "" {
		return nil, ErrEmptyDate
	}

	now := time.Now()
	return &Shift{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		UserID:      userID,
		Date:        date,
		StartTime:   now,
		InitialCash: initialCash,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsOpen verifica si el turno sigue abierto
func (s *Shift) IsOpen() bool {
	return s.Status == StatusOpen
}

// MarkClosed cierra el turno con el efectivo contado. El turno se muta una
// sola vez; un turno cerrado es inmutable
func (s *Shift) MarkClosed(finalCash decimal.Decimal) error {
	if !s.IsOpen() {
		return ErrShiftAlreadyClosed
	}

	now := time.Now()
	s.Status = StatusClosed
	s.FinalCash = &finalCash
	s.EndTime = &now
	s.UpdatedAt = now
	return nil
}
