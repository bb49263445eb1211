package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nombre no puede ser vacío")
	ErrEmptyTenantID = errors.New("ID del tenant no puede ser vacío")
)

// Status representa el estado del cliente
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Customer representa un cliente del salón
type Customer struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	BranchID    string     `json:"branch_id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	BirthDate   string     `json:"birth_date,omitempty"` // YYYY-MM-DD
	Notes       string     `json:"notes"`                // Preferencias, alergias, etc.
	Status      Status     `json:"status"`
	LastVisitAt *time.Time `json:"last_visit_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewCustomer crea un nuevo cliente
func NewCustomer(tenantID, branchID, name, phone, email, birthDate, notes string) (*Customer, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		BranchID:  branchID,
		Name:      name,
		Phone:     phone,
		Email:     email,
		BirthDate: birthDate,
		Notes:     notes,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update actualiza los datos del cliente
func (c *Customer) Update(name, phone, email, birthDate, notes string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.BirthDate = birthDate
	c.Notes = notes
	c.UpdatedAt = time.Now()
	return nil
}

// RegisterVisit registra la fecha de la última visita del cliente
func (c *Customer) RegisterVisit(at time.Time) {
	c.LastVisitAt = &at
	c.UpdatedAt = time.Now()
}
