package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/tenant"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Errores específicos del repositorio
var (
	ErrTenantNotFound     = errors.New("tenant no encontrado")
	ErrTenantDuplicateKey = errors.New("ya existe un tenant con el mismo documento")
)

// PostgresTenantRepository implementa tenant.Repository usando PostgreSQL
type PostgresTenantRepository struct {
	db *database.PostgresDB
}

// NewPostgresTenantRepository crea una nueva instancia de PostgresTenantRepository
func NewPostgresTenantRepository(db *database.PostgresDB) *PostgresTenantRepository {
	return &PostgresTenantRepository{
		db: db,
	}
}

// Create implementa tenant.Repository.Create
func (r *PostgresTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO tenants (
			id, name, document, email, phone, status, schema,
			plan_type, max_branches, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = conn.Exec(ctx, query,
		t.ID,
		t.Name,
		t.Document,
		t.Email,
		t.Phone,
		string(t.Status),
		t.Schema,
		t.PlanType,
		t.MaxBranches,
		t.CreatedAt,
		t.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrTenantDuplicateKey
		}
		return fmt.Errorf("error al insertar tenant: %w", err)
	}

	// Crear el schema del tenant para sus datos
	if err := r.db.CreateTenantSchema(ctx, t.Schema); err != nil {
		return err
	}

	return nil
}

// FindByID implementa tenant.Repository.FindByID
func (r *PostgresTenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	return r.findByQuery(ctx, "SELECT id, name, document, email, phone, status, schema, plan_type, max_branches, created_at, updated_at FROM tenants WHERE id = $1", id)
}

// FindByDocument implementa tenant.Repository.FindByDocument
func (r *PostgresTenantRepository) FindByDocument(ctx context.Context, document string) (*tenant.Tenant, error) {
	return r.findByQuery(ctx, "SELECT id, name, document, email, phone, status, schema, plan_type, max_branches, created_at, updated_at FROM tenants WHERE document = $1", document)
}

// findByQuery es un auxiliar para las búsquedas de un solo tenant
func (r *PostgresTenantRepository) findByQuery(ctx context.Context, query string, args ...interface{}) (*tenant.Tenant, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	t := &tenant.Tenant{}
	var status string

	err = conn.QueryRow(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&t.Document,
		&t.Email,
		&t.Phone,
		&status,
		&t.Schema,
		&t.PlanType,
		&t.MaxBranches,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("error al buscar tenant: %w", err)
	}

	t.Status = tenant.Status(status)
	return t, nil
}

// List implementa tenant.Repository.List
func (r *PostgresTenantRepository) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT id, name, document, email, phone, status, schema,
			plan_type, max_branches, created_at, updated_at
		FROM tenants
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := conn.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*tenant.Tenant

	for rows.Next() {
		t := &tenant.Tenant{}
		var status string

		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Document,
			&t.Email,
			&t.Phone,
			&status,
			&t.Schema,
			&t.PlanType,
			&t.MaxBranches,
			&t.CreatedAt,
			&t.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error al leer tenant: %w", err)
		}

		t.Status = tenant.Status(status)
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return tenants, nil
}

// Update implementa tenant.Repository.Update
func (r *PostgresTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE tenants
		SET name = $1, email = $2, phone = $3, status = $4,
			plan_type = $5, max_branches = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := conn.Exec(ctx, query,
		t.Name,
		t.Email,
		t.Phone,
		string(t.Status),
		t.PlanType,
		t.MaxBranches,
		time.Now(),
		t.ID,
	)

	if err != nil {
		return fmt.Errorf("error al actualizar tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// Delete implementa tenant.Repository.Delete
func (r *PostgresTenantRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM tenants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// UpdateStatus implementa tenant.Repository.UpdateStatus
func (r *PostgresTenantRepository) UpdateStatus(ctx context.Context, id string, status tenant.Status) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE tenants SET status = $1, updated_at = $2 WHERE id = $3",
		string(status), time.Now(), id)
	if err != nil {
		return fmt.Errorf("error al actualizar estado del tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// Count implementa tenant.Repository.Count
func (r *PostgresTenantRepository) Count(ctx context.Context) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM tenants").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar tenants: %w", err)
	}

	return count, nil
}

// Exists implementa tenant.Repository.Exists
func (r *PostgresTenantRepository) Exists(ctx context.Context, id string) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar existencia del tenant: %w", err)
	}

	return exists, nil
}

// ExistsByDocument implementa tenant.Repository.ExistsByDocument
func (r *PostgresTenantRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM tenants WHERE document = $1)", document).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar existencia del tenant: %w", err)
	}

	return exists, nil
}
