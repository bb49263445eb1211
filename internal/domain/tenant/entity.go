package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyID         = errors.New("id no puede ser vacío")
	ErrEmptyName       = errors.New("nombre no puede ser vacío")
	ErrEmptyDocument   = errors.New("documento no puede ser vacío")
	ErrInvalidTenantID = errors.New("ID de tenant inválido")
	ErrTenantInactive  = errors.New("el tenant no está activo")
)

// Status representa el estado del tenant
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

// Tenant representa una cadena de salones en el sistema multi-tenant
type Tenant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Document    string    `json:"document"` // RFC de la empresa
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Status      Status    `json:"status"`
	Schema      string    `json:"schema"`       // Nombre del schema en la base de datos
	PlanType    string    `json:"plan_type"`    // Tipo de plan contratado
	MaxBranches int       `json:"max_branches"` // Número máximo de sucursales permitidas
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTenant crea un nuevo tenant
func NewTenant(name, document, email, phone, planType string, maxBranches int) (*Tenant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if document == "" {
		return nil, ErrEmptyDocument
	}

	id := uuid.New().String()
	schema := "tenant_" + id[:8] // Schema derivado del ID

	return &Tenant{
		ID:          id,
		Name:        name,
		Document:    document,
		Email:       email,
		Phone:       phone,
		Status:      StatusActive,
		Schema:      schema,
		PlanType:    planType,
		MaxBranches: maxBranches,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// IsActive verifica si el tenant está activo
func (t *Tenant) IsActive() bool {
	return t.Status == StatusActive
}

// Activate activa el tenant
func (t *Tenant) Activate() {
	t.Status = StatusActive
	t.UpdatedAt = time.Now()
}

// Deactivate desactiva el tenant
func (t *Tenant) Deactivate() {
	t.Status = StatusInactive
	t.UpdatedAt = time.Now()
}

// Block bloquea el tenant
func (t *Tenant) Block() {
	t.Status = StatusBlocked
	t.UpdatedAt = time.Now()
}

// ChangePlan cambia el plan contratado
func (t *Tenant) ChangePlan(planType string, maxBranches int) {
	t.PlanType = planType
	t.MaxBranches = maxBranches
	t.UpdatedAt = time.Now()
}

// Update actualiza los datos del tenant
func (t *Tenant) Update(name, email, phone string) error {
	if name == "" {
		return ErrEmptyName
	}

	t.Name = name
	t.Email = email
	t.Phone = phone
	t.UpdatedAt = time.Now()
	return nil
}
