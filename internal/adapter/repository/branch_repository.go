package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/branch"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Errores específicos del repositorio
var (
	ErrBranchNotFound     = errors.New("sucursal no encontrada")
	ErrBranchDuplicateKey = errors.New("ya existe una sucursal con el mismo código")
)

// PostgresBranchRepository implementa branch.Repository usando PostgreSQL
type PostgresBranchRepository struct {
	db *database.PostgresDB
}

// NewPostgresBranchRepository crea una nueva instancia de PostgresBranchRepository
func NewPostgresBranchRepository(db *database.PostgresDB) *PostgresBranchRepository {
	return &PostgresBranchRepository{
		db: db,
	}
}

const branchColumns = `id, tenant_id, name, code, address, city, phone, email, status, is_main, created_at, updated_at`

// Create implementa branch.Repository.Create
func (r *PostgresBranchRepository) Create(ctx context.Context, b *branch.Branch) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO branches (
			id, tenant_id, name, code, address, city, phone, email,
			status, is_main, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = conn.Exec(ctx, query,
		b.ID,
		b.TenantID,
		b.Name,
		b.Code,
		b.Address,
		b.City,
		b.Phone,
		b.Email,
		string(b.Status),
		b.IsMain,
		b.CreatedAt,
		b.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrBranchDuplicateKey
		}
		return fmt.Errorf("error al insertar sucursal: %w", err)
	}

	return nil
}

// scanBranch lee una fila de sucursal
func scanBranch(row pgx.Row) (*branch.Branch, error) {
	b := &branch.Branch{}
	var status string

	err := row.Scan(
		&b.ID,
		&b.TenantID,
		&b.Name,
		&b.Code,
		&b.Address,
		&b.City,
		&b.Phone,
		&b.Email,
		&status,
		&b.IsMain,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Status = branch.Status(status)
	return b, nil
}

// FindByID implementa branch.Repository.FindByID
func (r *PostgresBranchRepository) FindByID(ctx context.Context, id string) (*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + branchColumns + ` FROM branches WHERE id = $1`

	b, err := scanBranch(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("error al buscar sucursal: %w", err)
	}

	return b, nil
}

// FindByTenantAndID implementa branch.Repository.FindByTenantAndID
func (r *PostgresBranchRepository) FindByTenantAndID(ctx context.Context, tenantID, id string) (*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + branchColumns + ` FROM branches WHERE tenant_id = $1 AND id = $2`

	b, err := scanBranch(conn.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("error al buscar sucursal: %w", err)
	}

	return b, nil
}

// FindMainBranch implementa branch.Repository.FindMainBranch
func (r *PostgresBranchRepository) FindMainBranch(ctx context.Context, tenantID string) (*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + branchColumns + ` FROM branches WHERE tenant_id = $1 AND is_main = true`

	b, err := scanBranch(conn.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("error al buscar sucursal principal: %w", err)
	}

	return b, nil
}

// Update implementa branch.Repository.Update
func (r *PostgresBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE branches
		SET name = $1, code = $2, address = $3, city = $4, phone = $5,
			email = $6, status = $7, is_main = $8, updated_at = $9
		WHERE id = $10
	`

	result, err := conn.Exec(ctx, query,
		b.Name,
		b.Code,
		b.Address,
		b.City,
		b.Phone,
		b.Email,
		string(b.Status),
		b.IsMain,
		time.Now(),
		b.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrBranchDuplicateKey
		}
		return fmt.Errorf("error al actualizar sucursal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// Delete implementa branch.Repository.Delete
func (r *PostgresBranchRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM branches WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar sucursal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// ListByTenant implementa branch.Repository.ListByTenant
func (r *PostgresBranchRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*branch.Branch, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + branchColumns + `
		FROM branches
		WHERE tenant_id = $1
		ORDER BY is_main DESC, name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar sucursales: %w", err)
	}
	defer rows.Close()

	var branches []*branch.Branch

	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer sucursal: %w", err)
		}
		branches = append(branches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return branches, nil
}

// CountByTenant implementa branch.Repository.CountByTenant
func (r *PostgresBranchRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM branches WHERE tenant_id = $1", tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar sucursales: %w", err)
	}

	return count, nil
}

// UpdateStatus implementa branch.Repository.UpdateStatus
func (r *PostgresBranchRepository) UpdateStatus(ctx context.Context, id string, status branch.Status) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE branches SET status = $1, updated_at = $2 WHERE id = $3",
		string(status), time.Now(), id)
	if err != nil {
		return fmt.Errorf("error al actualizar estado de la sucursal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrBranchNotFound
	}

	return nil
}

// Exists implementa branch.Repository.Exists
func (r *PostgresBranchRepository) Exists(ctx context.Context, id string) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM branches WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar existencia de la sucursal: %w", err)
	}

	return exists, nil
}
