package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/shift"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Errores específicos del repositorio
var (
	ErrShiftNotFound  = errors.New("turno no encontrado")
	ErrShiftOpenExists = errors.New("la sucursal ya tiene un turno abierto")
)

// PostgresShiftRepository implementa shift.Repository usando PostgreSQL.
// Los turnos viven en el schema del tenant.
type PostgresShiftRepository struct {
	db *database.PostgresDB
}

// NewPostgresShiftRepository crea una nueva instancia de PostgresShiftRepository
func NewPostgresShiftRepository(db *database.PostgresDB) *PostgresShiftRepository {
	return &PostgresShiftRepository{
		db: db,
	}
}

const shiftColumns = `id, branch_id, user_id, date, start_time, initial_cash, status, final_cash, end_time, created_at, updated_at`

// Create implementa shift.Repository.Create
func (r *PostgresShiftRepository) Create(ctx context.Context, s *shift.Shift) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO shifts (
			id, branch_id, user_id, date, start_time, initial_cash,
			status, final_cash, end_time, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = conn.Exec(ctx, query,
		s.ID,
		s.BranchID,
		s.UserID,
		s.Date,
		s.StartTime,
		s.InitialCash,
		string(s.Status),
		s.FinalCash,
		s.EndTime,
		s.CreatedAt,
		s.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		// El índice único parcial sobre (branch_id) WHERE status = 'abierto'
		// garantiza a lo más un turno abierto por sucursal
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrShiftOpenExists
		}
		return fmt.Errorf("error al insertar turno: %w", err)
	}

	return nil
}

// scanShift lee una fila de turno
func scanShift(row pgx.Row) (*shift.Shift, error) {
	s := &shift.Shift{}
	var status string

	err := row.Scan(
		&s.ID,
		&s.BranchID,
		&s.UserID,
		&s.Date,
		&s.StartTime,
		&s.InitialCash,
		&status,
		&s.FinalCash,
		&s.EndTime,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Status = shift.Status(status)
	return s, nil
}

// FindByID implementa shift.Repository.FindByID
func (r *PostgresShiftRepository) FindByID(ctx context.Context, id string) (*shift.Shift, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("error al buscar turno: %w", err)
	}

	return s, nil
}

// FindOpenByBranch implementa shift.Repository.FindOpenByBranch
func (r *PostgresShiftRepository) FindOpenByBranch(ctx context.Context, branchID string) (*shift.Shift, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE branch_id = $1 AND status = $2`

	s, err := scanShift(conn.QueryRow(ctx, query, branchID, string(shift.StatusOpen)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("error al buscar turno abierto: %w", err)
	}

	return s, nil
}

// Close implementa shift.Repository.Close. La condición sobre el estado
// hace que dos cierres concurrentes no produzcan dos cortes: el segundo
// UPDATE no afecta filas y se reporta como turno ya cerrado
func (r *PostgresShiftRepository) Close(ctx context.Context, s *shift.Shift) error {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE shifts
		SET status = $1, final_cash = $2, end_time = $3, updated_at = $4
		WHERE id = $5 AND status = $6
	`

	result, err := conn.Exec(ctx, query,
		string(shift.StatusClosed),
		s.FinalCash,
		s.EndTime,
		time.Now(),
		s.ID,
		string(shift.StatusOpen),
	)

	if err != nil {
		return fmt.Errorf("error al cerrar turno: %w", err)
	}

	if result.RowsAffected() == 0 {
		// O el turno no existe o ya estaba cerrado; se distingue con una
		// lectura adicional
		var exists bool
		err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM shifts WHERE id = $1)", s.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error al verificar turno: %w", err)
		}
		if !exists {
			return ErrShiftNotFound
		}
		return shift.ErrShiftAlreadyClosed
	}

	return nil
}

// ListByBranch implementa shift.Repository.ListByBranch
func (r *PostgresShiftRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*shift.Shift, error) {
	return r.list(ctx, `
		SELECT `+shiftColumns+`
		FROM shifts
		WHERE branch_id = $1
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3
	`, branchID, limit, offset)
}

// ListPendingCut implementa shift.Repository.ListPendingCut
func (r *PostgresShiftRepository) ListPendingCut(ctx context.Context, branchID string) ([]*shift.Shift, error) {
	return r.list(ctx, `
		SELECT `+shiftColumns+`
		FROM shifts s
		WHERE s.branch_id = $1
			AND s.status = $2
			AND NOT EXISTS (SELECT 1 FROM cash_cuts c WHERE c.shift_id = s.id)
		ORDER BY s.start_time ASC
	`, branchID, string(shift.StatusClosed))
}

// list ejecuta una consulta de turnos
func (r *PostgresShiftRepository) list(ctx context.Context, query string, args ...interface{}) ([]*shift.Shift, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar turnos: %w", err)
	}
	defer rows.Close()

	var shifts []*shift.Shift

	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer turno: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return shifts, nil
}

// CountByBranch implementa shift.Repository.CountByBranch
func (r *PostgresShiftRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM shifts WHERE branch_id = $1", branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar turnos: %w", err)
	}

	return count, nil
}
