package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/shift"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Errores específicos del repositorio
var (
	ErrCashCutNotFound  = errors.New("corte de caja no encontrado")
	ErrCashCutDuplicate = errors.New("el turno ya tiene un corte de caja")
)

// PostgresCashCutRepository implementa shift.CashCutRepository usando
// PostgreSQL. Los cortes viven en el schema del tenant. El desglose de
// ventas por método se guarda en columnas planas: el conjunto de métodos
// es cerrado
type PostgresCashCutRepository struct {
	db *database.PostgresDB
}

// NewPostgresCashCutRepository crea una nueva instancia de PostgresCashCutRepository
func NewPostgresCashCutRepository(db *database.PostgresDB) *PostgresCashCutRepository {
	return &PostgresCashCutRepository{
		db: db,
	}
}

const cashCutColumns = `id, shift_id, branch_id, date, user_id, initial_cash, final_cash, expected_cash, difference, sales_cash, sales_card, sales_transfer, total_sales, total_expenses, appointments_count, direct_sales_count, created_at`

// Create implementa shift.CashCutRepository.Create
func (r *PostgresCashCutRepository) Create(ctx context.Context, cut *shift.CashCut) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO cash_cuts (
			id, shift_id, branch_id, date, user_id, initial_cash,
			final_cash, expected_cash, difference, sales_cash, sales_card,
			sales_transfer, total_sales, total_expenses, appointments_count,
			direct_sales_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err = conn.Exec(ctx, query,
		cut.ID,
		cut.ShiftID,
		cut.BranchID,
		cut.Date,
		cut.UserID,
		cut.InitialCash,
		cut.FinalCash,
		cut.ExpectedCash,
		cut.Difference,
		cut.SalesByMethod[payment.MethodCash],
		cut.SalesByMethod[payment.MethodCard],
		cut.SalesByMethod[payment.MethodTransfer],
		cut.TotalSales,
		cut.TotalExpenses,
		cut.AppointmentsCount,
		cut.DirectSalesCount,
		cut.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		// El índice único sobre shift_id garantiza a lo más un corte por turno
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrCashCutDuplicate
		}
		return fmt.Errorf("error al insertar corte de caja: %w", err)
	}

	return nil
}

// scanCashCut lee una fila de corte
func scanCashCut(row pgx.Row) (*shift.CashCut, error) {
	cut := &shift.CashCut{}
	var salesCash, salesCard, salesTransfer decimal.Decimal

	err := row.Scan(
		&cut.ID,
		&cut.ShiftID,
		&cut.BranchID,
		&cut.Date,
		&cut.UserID,
		&cut.InitialCash,
		&cut.FinalCash,
		&cut.ExpectedCash,
		&cut.Difference,
		&salesCash,
		&salesCard,
		&salesTransfer,
		&cut.TotalSales,
		&cut.TotalExpenses,
		&cut.AppointmentsCount,
		&cut.DirectSalesCount,
		&cut.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	cut.SalesByMethod = map[payment.Method]decimal.Decimal{
		payment.MethodCash:     salesCash,
		payment.MethodCard:     salesCard,
		payment.MethodTransfer: salesTransfer,
	}
	return cut, nil
}

// FindByShiftID implementa shift.CashCutRepository.FindByShiftID
func (r *PostgresCashCutRepository) FindByShiftID(ctx context.Context, shiftID string) (*shift.CashCut, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + cashCutColumns + ` FROM cash_cuts WHERE shift_id = $1`

	cut, err := scanCashCut(conn.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCashCutNotFound
		}
		return nil, fmt.Errorf("error al buscar corte de caja: %w", err)
	}

	return cut, nil
}

// ExistsForShift implementa shift.CashCutRepository.ExistsForShift
func (r *PostgresCashCutRepository) ExistsForShift(ctx context.Context, shiftID string) (bool, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM cash_cuts WHERE shift_id = $1)", shiftID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error al verificar existencia del corte: %w", err)
	}

	return exists, nil
}

// ListByBranch implementa shift.CashCutRepository.ListByBranch
func (r *PostgresCashCutRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*shift.CashCut, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + cashCutColumns + `
		FROM cash_cuts
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn.Query(ctx, query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar cortes de caja: %w", err)
	}
	defer rows.Close()

	var cuts []*shift.CashCut

	for rows.Next() {
		cut, err := scanCashCut(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer corte de caja: %w", err)
		}
		cuts = append(cuts, cut)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return cuts, nil
}

// CountByBranch implementa shift.CashCutRepository.CountByBranch
func (r *PostgresCashCutRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM cash_cuts WHERE branch_id = $1", branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar cortes de caja: %w", err)
	}

	return count, nil
}
