package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/expense"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio
var (
	ErrExpenseNotFound = errors.New("gasto no encontrado")
)

// PostgresExpenseRepository implementa expense.Repository usando PostgreSQL.
// Los gastos viven en el schema del tenant.
type PostgresExpenseRepository struct {
	db *database.PostgresDB
}

// NewPostgresExpenseRepository crea una nueva instancia de PostgresExpenseRepository
func NewPostgresExpenseRepository(db *database.PostgresDB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{
		db: db,
	}
}

const expenseColumns = `id, branch_id, user_id, date, concept, category, amount, method, created_at`

// Create implementa expense.Repository.Create
func (r *PostgresExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO expenses (
			id, branch_id, user_id, date, concept, category, amount,
			method, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = conn.Exec(ctx, query,
		e.ID,
		e.BranchID,
		e.UserID,
		e.Date,
		e.Concept,
		e.Category,
		e.Amount,
		string(e.Method),
		e.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("error al insertar gasto: %w", err)
	}

	return nil
}

// scanExpense lee una fila de gasto
func scanExpense(row pgx.Row) (*expense.Expense, error) {
	e := &expense.Expense{}
	var method string

	err := row.Scan(
		&e.ID,
		&e.BranchID,
		&e.UserID,
		&e.Date,
		&e.Concept,
		&e.Category,
		&e.Amount,
		&method,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Method = payment.Method(method)
	return e, nil
}

// FindByID implementa expense.Repository.FindByID
func (r *PostgresExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("error al buscar gasto: %w", err)
	}

	return e, nil
}

// Delete implementa expense.Repository.Delete
func (r *PostgresExpenseRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar gasto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// ListByBranchAndDate implementa expense.Repository.ListByBranchAndDate
func (r *PostgresExpenseRepository) ListByBranchAndDate(ctx context.Context, branchID, date string) ([]*expense.Expense, error) {
	return r.list(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE branch_id = $1 AND date = $2
		ORDER BY created_at ASC
	`, branchID, date)
}

// ListByBranch implementa expense.Repository.ListByBranch
func (r *PostgresExpenseRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*expense.Expense, error) {
	return r.list(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE branch_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, branchID, limit, offset)
}

// list ejecuta una consulta de gastos
func (r *PostgresExpenseRepository) list(ctx context.Context, query string, args ...interface{}) ([]*expense.Expense, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar gastos: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer gasto: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return expenses, nil
}

// CountByBranch implementa expense.Repository.CountByBranch
func (r *PostgresExpenseRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM expenses WHERE branch_id = $1", branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar gastos: %w", err)
	}

	return count, nil
}
