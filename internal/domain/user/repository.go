package user

import (
	"context"
)

// Repository define las operaciones de persistencia para usuarios
type Repository interface {
	// Create persiste un nuevo usuario
	Create(ctx context.Context, u *User) error

	// FindByID busca un usuario por su ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca un usuario por tenant y email
	FindByEmail(ctx context.Context, tenantID, email string) (*User, error)

	// Update actualiza un usuario existente
	Update(ctx context.Context, u *User) error

	// Delete elimina un usuario
	Delete(ctx context.Context, id string) error

	// ListByTenant retorna una lista paginada de usuarios de un tenant
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*User, error)

	// CountByTenant retorna el total de usuarios de un tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)

	// UpdateStatus actualiza el estado de un usuario
	UpdateStatus(ctx context.Context, id string, status Status) error

	// UpdateLastLogin registra la fecha del último inicio de sesión
	UpdateLastLogin(ctx context.Context, id string) error

	// ExistsByEmail verifica si existe un usuario con el email en el tenant
	ExistsByEmail(ctx context.Context, tenantID, email string) (bool, error)
}
