package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/customer"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio
var (
	ErrCustomerNotFound = errors.New("cliente no encontrado")
)

// PostgresCustomerRepository implementa customer.Repository usando PostgreSQL.
// Los clientes viven en el schema del tenant.
type PostgresCustomerRepository struct {
	db *database.PostgresDB
}

// NewPostgresCustomerRepository crea una nueva instancia de PostgresCustomerRepository
func NewPostgresCustomerRepository(db *database.PostgresDB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		db: db,
	}
}

const customerColumns = `id, tenant_id, branch_id, name, phone, email, birth_date, notes, status, last_visit_at, created_at, updated_at`

// Create implementa customer.Repository.Create
func (r *PostgresCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO customers (
			id, tenant_id, branch_id, name, phone, email, birth_date,
			notes, status, last_visit_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = conn.Exec(ctx, query,
		c.ID,
		c.TenantID,
		c.BranchID,
		c.Name,
		c.Phone,
		c.Email,
		c.BirthDate,
		c.Notes,
		string(c.Status),
		c.LastVisitAt,
		c.CreatedAt,
		c.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("error al insertar cliente: %w", err)
	}

	return nil
}

// scanCustomer lee una fila de cliente
func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	c := &customer.Customer{}
	var status string

	err := row.Scan(
		&c.ID,
		&c.TenantID,
		&c.BranchID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.BirthDate,
		&c.Notes,
		&status,
		&c.LastVisitAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = customer.Status(status)
	return c, nil
}

// FindByID implementa customer.Repository.FindByID
func (r *PostgresCustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error al buscar cliente: %w", err)
	}

	return c, nil
}

// Update implementa customer.Repository.Update
func (r *PostgresCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, birth_date = $4, notes = $5,
			status = $6, last_visit_at = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := conn.Exec(ctx, query,
		c.Name,
		c.Phone,
		c.Email,
		c.BirthDate,
		c.Notes,
		string(c.Status),
		c.LastVisitAt,
		time.Now(),
		c.ID,
	)

	if err != nil {
		return fmt.Errorf("error al actualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete implementa customer.Repository.Delete
func (r *PostgresCustomerRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// ListByTenant implementa customer.Repository.ListByTenant
func (r *PostgresCustomerRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*customer.Customer, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar clientes: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer cliente: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return customers, nil
}

// SearchByNameOrPhone implementa customer.Repository.SearchByNameOrPhone
func (r *PostgresCustomerRepository) SearchByNameOrPhone(ctx context.Context, tenantID, query string, limit int) ([]*customer.Customer, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1 AND (name ILIKE $2 OR phone ILIKE $2)
		ORDER BY name ASC
		LIMIT $3
	`

	rows, err := conn.Query(ctx, sql, tenantID, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("error al buscar clientes: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer cliente: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return customers, nil
}

// CountByTenant implementa customer.Repository.CountByTenant
func (r *PostgresCustomerRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM customers WHERE tenant_id = $1", tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar clientes: %w", err)
	}

	return count, nil
}
