package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/catalog"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Errores específicos del repositorio
var (
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrProductDuplicateKey = errors.New("ya existe un producto con el mismo SKU")
)

// PostgresProductRepository implementa catalog.ProductRepository usando PostgreSQL.
// Los productos viven en el schema del tenant.
type PostgresProductRepository struct {
	db *database.PostgresDB
}

// NewPostgresProductRepository crea una nueva instancia de PostgresProductRepository
func NewPostgresProductRepository(db *database.PostgresDB) *PostgresProductRepository {
	return &PostgresProductRepository{
		db: db,
	}
}

const productColumns = `id, tenant_id, name, sku, category, price, cost, stock, min_stock, active, created_at, updated_at`

// Create implementa catalog.ProductRepository.Create
func (r *PostgresProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO products (
			id, tenant_id, name, sku, category, price, cost, stock,
			min_stock, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = conn.Exec(ctx, query,
		p.ID,
		p.TenantID,
		p.Name,
		p.SKU,
		p.Category,
		p.Price,
		p.Cost,
		p.Stock,
		p.MinStock,
		p.Active,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("error al insertar producto: %w", err)
	}

	return nil
}

// scanProduct lee una fila de producto
func scanProduct(row pgx.Row) (*catalog.Product, error) {
	p := &catalog.Product{}

	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&p.SKU,
		&p.Category,
		&p.Price,
		&p.Cost,
		&p.Stock,
		&p.MinStock,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// FindByID implementa catalog.ProductRepository.FindByID
func (r *PostgresProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("error al buscar producto: %w", err)
	}

	return p, nil
}

// Update implementa catalog.ProductRepository.Update
func (r *PostgresProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE products
		SET name = $1, sku = $2, category = $3, price = $4, cost = $5,
			stock = $6, min_stock = $7, active = $8, updated_at = $9
		WHERE id = $10
	`

	result, err := conn.Exec(ctx, query,
		p.Name,
		p.SKU,
		p.Category,
		p.Price,
		p.Cost,
		p.Stock,
		p.MinStock,
		p.Active,
		time.Now(),
		p.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("error al actualizar producto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa catalog.ProductRepository.Delete
func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar producto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// ListByTenant implementa catalog.ProductRepository.ListByTenant
func (r *PostgresProductRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*catalog.Product, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar productos: %w", err)
	}
	defer rows.Close()

	var products []*catalog.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer producto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return products, nil
}

// ListActive implementa catalog.ProductRepository.ListActive
func (r *PostgresProductRepository) ListActive(ctx context.Context, tenantID string) ([]*catalog.Product, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1 AND active = true
		ORDER BY name ASC
	`

	rows, err := conn.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error al listar productos activos: %w", err)
	}
	defer rows.Close()

	var products []*catalog.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer producto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return products, nil
}

// AdjustStock implementa catalog.ProductRepository.AdjustStock
func (r *PostgresProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	// Las existencias pueden quedar negativas; el inventario se corrige después
	result, err := conn.Exec(ctx,
		"UPDATE products SET stock = stock + $1, updated_at = $2 WHERE id = $3",
		delta, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error al ajustar existencias: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// CountByTenant implementa catalog.ProductRepository.CountByTenant
func (r *PostgresProductRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE tenant_id = $1", tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar productos: %w", err)
	}

	return count, nil
}
