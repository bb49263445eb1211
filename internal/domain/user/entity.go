package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName     = errors.New("nombre no puede ser vacío")
	ErrEmptyEmail    = errors.New("email no puede ser vacío")
	ErrEmptyTenantID = errors.New("ID del tenant no puede ser vacío")
)

// Role representa el rol del usuario dentro del salón
type Role string

const (
	RoleAdmin     Role = "admin"     // Administrador del sistema
	RoleReception Role = "recepcion" // Recepcionista / caja
	RoleStylist   Role = "estilista" // Estilista
)

// Status representa el estado del usuario
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

// User representa un usuario del sistema
type User struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	BranchID    string    `json:"branch_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // La contraseña nunca se serializa
	Role        Role      `json:"role"`
	Status      Status    `json:"status"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser crea un nuevo usuario con la contraseña ya hasheada
func NewUser(tenantID, branchID, name, email, password string, role Role) (*User, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	if email == "" {
		return nil, ErrEmptyEmail
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		BranchID:  branchID,
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword guarda la contraseña del usuario con hash bcrypt
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica si la contraseña es válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica si el usuario está activo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica si el usuario es administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasAccessToBranch verifica si el usuario tiene acceso a la sucursal.
// Los administradores tienen acceso a todas las sucursales de su tenant
func (u *User) HasAccessToBranch(branchID string) bool {
	if u.IsAdmin() {
		return true
	}
	return u.BranchID == branchID
}
