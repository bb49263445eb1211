package branch

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyID         = errors.New("id no puede ser vacío")
	ErrEmptyName       = errors.New("nombre no puede ser vacío")
	ErrEmptyTenantID   = errors.New("ID del tenant no puede ser vacío")
	ErrInvalidBranchID = errors.New("ID de sucursal inválido")
	ErrBranchNotActive = errors.New("la sucursal no está activa")
)

// Status representa el estado de la sucursal
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Branch representa una sucursal de la cadena de salones
type Branch struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"` // Código interno de la sucursal
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	IsMain    bool      `json:"is_main"` // Indica si es la sucursal principal
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBranch crea una nueva sucursal
func NewBranch(tenantID, name, code, address, city, phone, email string, isMain bool) (*Branch, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Branch{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Code:      code,
		Address:   address,
		City:      city,
		Phone:     phone,
		Email:     email,
		Status:    StatusActive,
		IsMain:    isMain,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive verifica si la sucursal está activa
func (b *Branch) IsActive() bool {
	return b.Status == StatusActive
}

// Update actualiza los datos de la sucursal
func (b *Branch) Update(name, code, address, city, phone, email string) error {
	if name == "" {
		return ErrEmptyName
	}

	b.Name = name
	b.Code = code
	b.Address = address
	b.City = city
	b.Phone = phone
	b.Email = email
	b.UpdatedAt = time.Now()
	return nil
}
