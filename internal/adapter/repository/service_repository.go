package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/catalog"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio
var (
	ErrServiceNotFound = errors.New("servicio no encontrado")
)

// PostgresServiceRepository implementa catalog.ServiceRepository usando PostgreSQL.
// Los servicios viven en el schema del tenant.
type PostgresServiceRepository struct {
	db *database.PostgresDB
}

// NewPostgresServiceRepository crea una nueva instancia de PostgresServiceRepository
func NewPostgresServiceRepository(db *database.PostgresDB) *PostgresServiceRepository {
	return &PostgresServiceRepository{
		db: db,
	}
}

const serviceColumns = `id, tenant_id, name, category, duration, price, active, created_at, updated_at`

// Create implementa catalog.ServiceRepository.Create
func (r *PostgresServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO services (
			id, tenant_id, name, category, duration, price, active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = conn.Exec(ctx, query,
		s.ID,
		s.TenantID,
		s.Name,
		s.Category,
		s.Duration,
		s.Price,
		s.Active,
		s.CreatedAt,
		s.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("error al insertar servicio: %w", err)
	}

	return nil
}

// scanService lee una fila de servicio
func scanService(row pgx.Row) (*catalog.Service, error) {
	s := &catalog.Service{}

	err := row.Scan(
		&s.ID,
		&s.TenantID,
		&s.Name,
		&s.Category,
		&s.Duration,
		&s.Price,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// FindByID implementa catalog.ServiceRepository.FindByID
func (r *PostgresServiceRepository) FindByID(ctx context.Context, id string) (*catalog.Service, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	s, err := scanService(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("error al buscar servicio: %w", err)
	}

	return s, nil
}

// Update implementa catalog.ServiceRepository.Update
func (r *PostgresServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE services
		SET name = $1, category = $2, duration = $3, price = $4,
			active = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := conn.Exec(ctx, query,
		s.Name,
		s.Category,
		s.Duration,
		s.Price,
		s.Active,
		time.Now(),
		s.ID,
	)

	if err != nil {
		return fmt.Errorf("error al actualizar servicio: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete implementa catalog.ServiceRepository.Delete
func (r *PostgresServiceRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar servicio: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// ListByTenant implementa catalog.ServiceRepository.ListByTenant
func (r *PostgresServiceRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*catalog.Service, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar servicios: %w", err)
	}
	defer rows.Close()

	var services []*catalog.Service

	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer servicio: %w", err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return services, nil
}

// ListActive implementa catalog.ServiceRepository.ListActive
func (r *PostgresServiceRepository) ListActive(ctx context.Context, tenantID string) ([]*catalog.Service, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE tenant_id = $1 AND active = true
		ORDER BY name ASC
	`

	rows, err := conn.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error al listar servicios activos: %w", err)
	}
	defer rows.Close()

	var services []*catalog.Service

	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer servicio: %w", err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return services, nil
}

// CountByTenant implementa catalog.ServiceRepository.CountByTenant
func (r *PostgresServiceRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM services WHERE tenant_id = $1", tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar servicios: %w", err)
	}

	return count, nil
}
