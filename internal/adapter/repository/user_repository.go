package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/user"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Errores específicos del repositorio
var (
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrUserDuplicateKey = errors.New("ya existe un usuario con el mismo email")
)

// PostgresUserRepository implementa user.Repository usando PostgreSQL
type PostgresUserRepository struct {
	db *database.PostgresDB
}

// NewPostgresUserRepository crea una nueva instancia de PostgresUserRepository
func NewPostgresUserRepository(db *database.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

const userColumns = `id, tenant_id, branch_id, name, email, password, role, status, last_login_at, created_at, updated_at`

// Create implementa user.Repository.Create
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO users (
			id, tenant_id, branch_id, name, email, password, role,
			status, last_login_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = conn.Exec(ctx, query,
		u.ID,
		u.TenantID,
		u.BranchID,
		u.Name,
		u.Email,
		u.Password,
		string(u.Role),
		string(u.Status),
		u.LastLoginAt,
		u.CreatedAt,
		u.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("error al insertar usuario: %w", err)
	}

	return nil
}

// scanUser lee una fila de usuario
func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	var role, status string

	err := row.Scan(
		&u.ID,
		&u.TenantID,
		&u.BranchID,
		&u.Name,
		&u.Email,
		&u.Password,
		&role,
		&status,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role = user.Role(role)
	u.Status = user.Status(status)
	return u, nil
}

// FindByID implementa user.Repository.FindByID
func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}

	return u, nil
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, tenantID, email string) (*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 AND email = $2`

	u, err := scanUser(conn.QueryRow(ctx, query, tenantID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error al buscar usuario por email: %w", err)
	}

	return u, nil
}

// Update implementa user.Repository.Update
func (r *PostgresUserRepository) Update(ctx context.Context, u *user.User) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE users
		SET branch_id = $1, name = $2, email = $3, password = $4,
			role = $5, status = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := conn.Exec(ctx, query,
		u.BranchID,
		u.Name,
		u.Email,
		u.Password,
		string(u.Role),
		string(u.Status),
		time.Now(),
		u.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("error al actualizar usuario: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete implementa user.Repository.Delete
func (r *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar usuario: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListByTenant implementa user.Repository.ListByTenant
func (r *PostgresUserRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar usuarios: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer usuario: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return users, nil
}

// CountByTenant implementa user.Repository.CountByTenant
func (r *PostgresUserRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE tenant_id = $1", tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar usuarios: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa user.Repository.UpdateStatus
func (r *PostgresUserRepository) UpdateStatus(ctx context.Context, id string, status user.Status) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE users SET status = $1, updated_at = $2 WHERE id = $3",
		string(status), time.Now(), id)
	if err != nil {
		return fmt.Errorf("error al actualizar estado del usuario: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *PostgresUserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE users SET last_login_at = $1, updated_at = $1 WHERE id = $2",
		time.Now(), id)
	if err != nil {
		return fmt.Errorf("error al registrar inicio de sesión: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ExistsByEmail implementa user.Repository.ExistsByEmail
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, tenantID, email string) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE tenant_id = $1 AND email = $2)",
		tenantID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar existencia del usuario: %w", err)
	}

	return exists, nil
}
