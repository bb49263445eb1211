package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/purchase"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio
var (
	ErrPurchaseNotFound = errors.New("compra no encontrada")
)

// PostgresPurchaseRepository implementa purchase.Repository usando
// PostgreSQL. Las compras y sus líneas viven en el schema del tenant.
type PostgresPurchaseRepository struct {
	db *database.PostgresDB
}

// NewPostgresPurchaseRepository crea una nueva instancia de PostgresPurchaseRepository
func NewPostgresPurchaseRepository(db *database.PostgresDB) *PostgresPurchaseRepository {
	return &PostgresPurchaseRepository{
		db: db,
	}
}

const purchaseColumns = `id, branch_id, user_id, supplier, date, status, total, method, received_at, created_at, updated_at`

// Create implementa purchase.Repository.Create
func (r *PostgresPurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO purchases (
				id, branch_id, user_id, supplier, date, status, total,
				method, received_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`

		_, err := tx.Exec(ctx, query,
			p.ID,
			p.BranchID,
			p.UserID,
			p.Supplier,
			p.Date,
			string(p.Status),
			p.Total,
			string(p.Method),
			p.ReceivedAt,
			p.CreatedAt,
			p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("error al insertar compra: %w", err)
		}

		itemQuery := `
			INSERT INTO purchase_items (
				id, purchase_id, product_id, name, quantity, unit_cost, subtotal
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		for _, item := range p.Items {
			_, err := tx.Exec(ctx, itemQuery,
				item.ID,
				p.ID,
				item.ProductID,
				item.Name,
				item.Quantity,
				item.UnitCost,
				item.Subtotal,
			)
			if err != nil {
				return fmt.Errorf("error al insertar línea de compra: %w", err)
			}
		}

		return nil
	})
}

// scanPurchase lee una fila de compra, sin sus líneas
func scanPurchase(row pgx.Row) (*purchase.Purchase, error) {
	p := &purchase.Purchase{}
	var status, method string

	err := row.Scan(
		&p.ID,
		&p.BranchID,
		&p.UserID,
		&p.Supplier,
		&p.Date,
		&status,
		&p.Total,
		&method,
		&p.ReceivedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = purchase.Status(status)
	p.Method = payment.Method(method)
	return p, nil
}

// loadPurchaseItems carga las líneas de una compra
func loadPurchaseItems(ctx context.Context, conn queryer, p *purchase.Purchase) error {
	rows, err := conn.Query(ctx, `
		SELECT id, product_id, name, quantity, unit_cost, subtotal
		FROM purchase_items
		WHERE purchase_id = $1
		ORDER BY name ASC
	`, p.ID)
	if err != nil {
		return fmt.Errorf("error al cargar líneas de la compra: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item purchase.Item

		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Name,
			&item.Quantity,
			&item.UnitCost,
			&item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("error al leer línea de compra: %w", err)
		}

		p.Items = append(p.Items, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error al iterar resultados: %w", err)
	}

	return nil
}

// FindByID implementa purchase.Repository.FindByID
func (r *PostgresPurchaseRepository) FindByID(ctx context.Context, id string) (*purchase.Purchase, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`

	p, err := scanPurchase(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("error al buscar compra: %w", err)
	}

	if err := loadPurchaseItems(ctx, conn, p); err != nil {
		return nil, err
	}

	return p, nil
}

// UpdateStatus implementa purchase.Repository.UpdateStatus
func (r *PostgresPurchaseRepository) UpdateStatus(ctx context.Context, p *purchase.Purchase) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx,
		"UPDATE purchases SET status = $1, received_at = $2, updated_at = $3 WHERE id = $4",
		string(p.Status), p.ReceivedAt, time.Now(), p.ID)
	if err != nil {
		return fmt.Errorf("error al actualizar estado de la compra: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}

// ListByBranchAndDate implementa purchase.Repository.ListByBranchAndDate.
// Solo las compras recibidas cuentan para la conciliación del día
func (r *PostgresPurchaseRepository) ListByBranchAndDate(ctx context.Context, branchID, date string) ([]*purchase.Purchase, error) {
	return r.list(ctx, `
		SELECT `+purchaseColumns+`
		FROM purchases
		WHERE branch_id = $1 AND date = $2 AND status = '`+string(purchase.StatusReceived)+`'
		ORDER BY created_at ASC
	`, branchID, date)
}

// ListByBranch implementa purchase.Repository.ListByBranch
func (r *PostgresPurchaseRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*purchase.Purchase, error) {
	return r.list(ctx, `
		SELECT `+purchaseColumns+`
		FROM purchases
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, branchID, limit, offset)
}

// list ejecuta una consulta de compras y carga sus líneas
func (r *PostgresPurchaseRepository) list(ctx context.Context, query string, args ...interface{}) ([]*purchase.Purchase, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar compras: %w", err)
	}
	defer rows.Close()

	var purchases []*purchase.Purchase

	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer compra: %w", err)
		}
		purchases = append(purchases, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}
	rows.Close()

	for _, p := range purchases {
		if err := loadPurchaseItems(ctx, conn, p); err != nil {
			return nil, err
		}
	}

	return purchases, nil
}

// CountByBranch implementa purchase.Repository.CountByBranch
func (r *PostgresPurchaseRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM purchases WHERE branch_id = $1", branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar compras: %w", err)
	}

	return count, nil
}
