package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nombre no puede ser vacío")
	ErrEmptyTenantID = errors.New("ID del tenant no puede ser vacío")
)

// Service representa un servicio del catálogo del salón (corte, tinte,
// manicure, etc.)
type Service struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Duration  int             `json:"duration"` // Duración en minutos
	Price     decimal.Decimal `json:"price"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewService crea un nuevo servicio del catálogo
func NewService(tenantID, name, category string, duration int, price decimal.Decimal) (*Service, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Service{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Category:  category,
		Duration:  duration,
		Price:     price,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update actualiza los datos del servicio
func (s *Service) Update(name, category string, duration int, price decimal.Decimal) error {
	if name == "" {
		return ErrEmptyName
	}

	s.Name = name
	s.Category = category
	s.Duration = duration
	s.Price = price
	s.UpdatedAt = time.Now()
	return nil
}
