package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/sale"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio
var (
	ErrSaleNotFound = errors.New("venta no encontrada")
)

// PostgresSaleRepository implementa sale.Repository usando PostgreSQL.
// Las ventas, sus líneas y sus sub-pagos viven en el schema del tenant.
type PostgresSaleRepository struct {
	db *database.PostgresDB
}

// NewPostgresSaleRepository crea una nueva instancia de PostgresSaleRepository
func NewPostgresSaleRepository(db *database.PostgresDB) *PostgresSaleRepository {
	return &PostgresSaleRepository{
		db: db,
	}
}

const saleColumns = `id, branch_id, user_id, customer_id, appointment_id, date, total, method, created_at, updated_at`

// Create implementa sale.Repository.Create
func (r *PostgresSaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO sales (
				id, branch_id, user_id, customer_id, appointment_id, date,
				total, method, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`

		_, err := tx.Exec(ctx, query,
			s.ID,
			s.BranchID,
			s.UserID,
			s.CustomerID,
			s.AppointmentID,
			s.Date,
			s.Total,
			string(s.Method),
			s.CreatedAt,
			s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("error al insertar venta: %w", err)
		}

		itemQuery := `
			INSERT INTO sale_items (
				id, sale_id, kind, reference_id, name, unit_price,
				quantity, subtotal
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		for _, item := range s.Items {
			_, err := tx.Exec(ctx, itemQuery,
				item.ID,
				s.ID,
				string(item.Kind),
				item.ReferenceID,
				item.Name,
				item.UnitPrice,
				item.Quantity,
				item.Subtotal,
			)
			if err != nil {
				return fmt.Errorf("error al insertar línea de venta: %w", err)
			}
		}

		subQuery := `
			INSERT INTO sale_sub_payments (id, sale_id, method, amount)
			VALUES ($1, $2, $3, $4)
		`

		for _, sub := range s.SubPayments {
			_, err := tx.Exec(ctx, subQuery,
				uuid.New().String(),
				s.ID,
				string(sub.Method),
				sub.Amount,
			)
			if err != nil {
				return fmt.Errorf("error al insertar sub-pago: %w", err)
			}
		}

		return nil
	})
}

// scanSale lee una fila de venta, sin líneas ni sub-pagos
func scanSale(row pgx.Row) (*sale.Sale, error) {
	s := &sale.Sale{}
	var method string

	err := row.Scan(
		&s.ID,
		&s.BranchID,
		&s.UserID,
		&s.CustomerID,
		&s.AppointmentID,
		&s.Date,
		&s.Total,
		&method,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Method = payment.Method(method)
	return s, nil
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// loadSaleChildren carga las líneas y los sub-pagos de una venta
func loadSaleChildren(ctx context.Context, conn queryer, s *sale.Sale) error {
	itemRows, err := conn.Query(ctx, `
		SELECT id, kind, reference_id, name, unit_price, quantity, subtotal
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY name ASC
	`, s.ID)
	if err != nil {
		return fmt.Errorf("error al cargar líneas de la venta: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item sale.Item
		var kind string

		err := itemRows.Scan(
			&item.ID,
			&kind,
			&item.ReferenceID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("error al leer línea de venta: %w", err)
		}

		item.Kind = sale.ItemKind(kind)
		s.Items = append(s.Items, item)
	}

	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("error al iterar resultados: %w", err)
	}
	itemRows.Close()

	subRows, err := conn.Query(ctx, `
		SELECT method, amount
		FROM sale_sub_payments
		WHERE sale_id = $1
		ORDER BY method ASC
	`, s.ID)
	if err != nil {
		return fmt.Errorf("error al cargar sub-pagos de la venta: %w", err)
	}
	defer subRows.Close()

	for subRows.Next() {
		var sub payment.SubPayment
		var method string

		if err := subRows.Scan(&method, &sub.Amount); err != nil {
			return fmt.Errorf("error al leer sub-pago: %w", err)
		}

		sub.Method = payment.Method(method)
		s.SubPayments = append(s.SubPayments, sub)
	}

	if err := subRows.Err(); err != nil {
		return fmt.Errorf("error al iterar resultados: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *PostgresSaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`

	s, err := scanSale(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("error al buscar venta: %w", err)
	}

	if err := loadSaleChildren(ctx, conn, s); err != nil {
		return nil, err
	}

	return s, nil
}

// ListByBranchAndDate implementa sale.Repository.ListByBranchAndDate
func (r *PostgresSaleRepository) ListByBranchAndDate(ctx context.Context, branchID, date string) ([]*sale.Sale, error) {
	return r.list(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE branch_id = $1 AND date = $2
		ORDER BY created_at ASC
	`, branchID, date)
}

// ListByBranch implementa sale.Repository.ListByBranch
func (r *PostgresSaleRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*sale.Sale, error) {
	return r.list(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, branchID, limit, offset)
}

// list ejecuta una consulta de ventas y carga las líneas y sub-pagos
func (r *PostgresSaleRepository) list(ctx context.Context, query string, args ...interface{}) ([]*sale.Sale, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar ventas: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale

	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer venta: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}
	rows.Close()

	for _, s := range sales {
		if err := loadSaleChildren(ctx, conn, s); err != nil {
			return nil, err
		}
	}

	return sales, nil
}

// CountDirectByBranchAndDate implementa sale.Repository.CountDirectByBranchAndDate
func (r *PostgresSaleRepository) CountDirectByBranchAndDate(ctx context.Context, branchID, date string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM sales WHERE branch_id = $1 AND date = $2 AND appointment_id = ''",
		branchID, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar ventas de mostrador: %w", err)
	}

	return count, nil
}

// CountByBranch implementa sale.Repository.CountByBranch
func (r *PostgresSaleRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM sales WHERE branch_id = $1", branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar ventas: %w", err)
	}

	return count, nil
}
