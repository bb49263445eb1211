package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBranchID       = errors.New("ID de la sucursal no puede ser vacío")
	ErrEmptyCustomerID     = errors.New("ID del cliente no puede ser vacío")
	ErrEmptyStylistID      = errors.New("ID del estilista no puede ser vacío")
	ErrEmptyDate           = errors.New("fecha de la cita no puede ser vacía")
	ErrNoItems             = errors.New("la cita requiere al menos un servicio")
	ErrAlreadyCompleted    = errors.New("la cita ya fue completada")
	ErrCancelCompleted     = errors.New("no se puede cancelar una cita completada")
	ErrInvalidStatusChange = errors.New("transición de estado inválida")
)

// Status representa el estado de la cita
type Status string

const (
	StatusScheduled  Status = "agendada"
	StatusInProgress Status = "en_proceso"
	StatusCompleted  Status = "completada"
	StatusCancelled  Status = "cancelada"
)

// Item representa una línea de servicio de la cita. El nombre, la
// duración y el precio se congelan al agregar la línea: cambios
// posteriores al catálogo no alteran citas existentes
type Item struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Duration  int             `json:"duration"` // Minutos
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Appointment representa una cita agendada en una sucursal
type Appointment struct {
	ID          string     `json:"id"`
	BranchID    string     `json:"branch_id"`
	CustomerID  string     `json:"customer_id"`
	StylistID   string     `json:"stylist_id"`
	Date        string     `json:"date"` // Día calendario, formato YYYY-MM-DD
	StartTime   string     `json:"start_time"`
	Status      Status     `json:"status"`
	Items       []Item     `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewAppointment crea una nueva cita agendada
func NewAppointment(branchID, customerID, stylistID, date, startTime, notes string, items []Item) (*Appointment, error) {
	if branchID == "" {
		return nil, ErrEmptyBranchID
	}

	if customerID == "" {
		return nil, ErrEmptyCustomerID
	}

	if stylistID == "" {
		return nil, ErrEmptyStylistID
	}

	if date == "" {
		return nil, ErrEmptyDate
	}

	if len(items) == 0 {
		return nil, ErrNoItems
	}

	now := time.Now()
	a := &Appointment{
		ID:         uuid.New().String(),
		BranchID:   branchID,
		CustomerID: customerID,
		StylistID:  stylistID,
		Date:       date,
		StartTime:  startTime,
		Status:     StatusScheduled,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	a.ReplaceItems(items)
	return a, nil
}

// NewItem arma una línea de servicio con el subtotal calculado
func NewItem(serviceID, name string, duration int, unitPrice decimal.Decimal, quantity int) Item {
	return Item{
		ID:        uuid.New().String(),
		ServiceID: serviceID,
		Name:      name,
		Duration:  duration,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// ReplaceItems reemplaza las líneas de la cita y recalcula el total
func (a *Appointment) ReplaceItems(items []Item) {
	a.Items = items
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	a.Total = total
	a.UpdatedAt = time.Now()
}

// Reschedule cambia la fecha y hora de la cita
func (a *Appointment) Reschedule(date, startTime string) error {
	if a.Status == StatusCompleted {
		return ErrAlreadyCompleted
	}

	if date == "" {
		return ErrEmptyDate
	}

	a.Date = date
	a.StartTime = startTime
	a.UpdatedAt = time.Now()
	return nil
}

// Start marca la cita como en proceso
func (a *Appointment) Start() error {
	if a.Status != StatusScheduled {
		return ErrInvalidStatusChange
	}
	a.Status = StatusInProgress
	a.UpdatedAt = time.Now()
	return nil
}

// Complete marca la cita como completada y registra el momento. Las citas
// completadas alimentan el conteo del resumen de turno
func (a *Appointment) Complete() error {
	if a.Status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if a.Status == StatusCancelled {
		return ErrInvalidStatusChange
	}

	now := time.Now()
	a.Status = StatusCompleted
	a.CompletedAt = &now
	a.UpdatedAt = now
	return nil
}

// Cancel cancela la cita. Una cita completada no se puede cancelar
func (a *Appointment) Cancel() error {
	if a.Status == StatusCompleted {
		return ErrCancelCompleted
	}
	a.Status = StatusCancelled
	a.UpdatedAt = time.Now()
	return nil
}
