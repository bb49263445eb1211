package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/appointment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio
var (
	ErrAppointmentNotFound = errors.New("cita no encontrada")
)

// PostgresAppointmentRepository implementa appointment.Repository usando
// PostgreSQL. Las citas y sus líneas viven en el schema del tenant.
type PostgresAppointmentRepository struct {
	db *database.PostgresDB
}

// NewPostgresAppointmentRepository crea una nueva instancia de PostgresAppointmentRepository
func NewPostgresAppointmentRepository(db *database.PostgresDB) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{
		db: db,
	}
}

const appointmentColumns = `id, branch_id, customer_id, stylist_id, date, start_time, status, total, notes, completed_at, created_at, updated_at`

// Create implementa appointment.Repository.Create
func (r *PostgresAppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO appointments (
				id, branch_id, customer_id, stylist_id, date, start_time,
				status, total, notes, completed_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`

		_, err := tx.Exec(ctx, query,
			a.ID,
			a.BranchID,
			a.CustomerID,
			a.StylistID,
			a.Date,
			a.StartTime,
			string(a.Status),
			a.Total,
			a.Notes,
			a.CompletedAt,
			a.CreatedAt,
			a.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("error al insertar cita: %w", err)
		}

		return insertAppointmentItems(ctx, tx, a.ID, a.Items)
	})
}

// insertAppointmentItems persiste las líneas de una cita
func insertAppointmentItems(ctx context.Context, tx pgx.Tx, appointmentID string, items []appointment.Item) error {
	query := `
		INSERT INTO appointment_items (
			id, appointment_id, service_id, name, duration, unit_price,
			quantity, subtotal
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, item := range items {
		_, err := tx.Exec(ctx, query,
			item.ID,
			appointmentID,
			item.ServiceID,
			item.Name,
			item.Duration,
			item.UnitPrice,
			item.Quantity,
			item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("error al insertar línea de cita: %w", err)
		}
	}

	return nil
}

// scanAppointment lee una fila de cita, sin sus líneas
func scanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	a := &appointment.Appointment{}
	var status string

	err := row.Scan(
		&a.ID,
		&a.BranchID,
		&a.CustomerID,
		&a.StylistID,
		&a.Date,
		&a.StartTime,
		&status,
		&a.Total,
		&a.Notes,
		&a.CompletedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Status = appointment.Status(status)
	return a, nil
}

// loadItems carga las líneas de una cita
func (r *PostgresAppointmentRepository) loadItems(ctx context.Context, conn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}, appointmentID string) ([]appointment.Item, error) {
	query := `
		SELECT id, service_id, name, duration, unit_price, quantity, subtotal
		FROM appointment_items
		WHERE appointment_id = $1
		ORDER BY name ASC
	`

	rows, err := conn.Query(ctx, query, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("error al cargar líneas de la cita: %w", err)
	}
	defer rows.Close()

	var items []appointment.Item

	for rows.Next() {
		var item appointment.Item
		err := rows.Scan(
			&item.ID,
			&item.ServiceID,
			&item.Name,
			&item.Duration,
			&item.UnitPrice,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error al leer línea de cita: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	return items, nil
}

// FindByID implementa appointment.Repository.FindByID
func (r *PostgresAppointmentRepository) FindByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	a, err := scanAppointment(conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("error al buscar cita: %w", err)
	}

	a.Items, err = r.loadItems(ctx, conn, a.ID)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Update implementa appointment.Repository.Update
func (r *PostgresAppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE appointments
			SET customer_id = $1, stylist_id = $2, date = $3, start_time = $4,
				status = $5, total = $6, notes = $7, completed_at = $8,
				updated_at = $9
			WHERE id = $10
		`

		result, err := tx.Exec(ctx, query,
			a.CustomerID,
			a.StylistID,
			a.Date,
			a.StartTime,
			string(a.Status),
			a.Total,
			a.Notes,
			a.CompletedAt,
			time.Now(),
			a.ID,
		)
		if err != nil {
			return fmt.Errorf("error al actualizar cita: %w", err)
		}

		if result.RowsAffected() == 0 {
			return ErrAppointmentNotFound
		}

		// Las líneas se reemplazan completas: el editor siempre envía el
		// conjunto vigente
		_, err = tx.Exec(ctx, "DELETE FROM appointment_items WHERE appointment_id = $1", a.ID)
		if err != nil {
			return fmt.Errorf("error al reemplazar líneas de la cita: %w", err)
		}

		return insertAppointmentItems(ctx, tx, a.ID, a.Items)
	})
}

// Delete implementa appointment.Repository.Delete
func (r *PostgresAppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, "DELETE FROM appointment_items WHERE appointment_id = $1", id)
		if err != nil {
			return fmt.Errorf("error al eliminar líneas de la cita: %w", err)
		}

		result, err := tx.Exec(ctx, "DELETE FROM appointments WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("error al eliminar cita: %w", err)
		}

		if result.RowsAffected() == 0 {
			return ErrAppointmentNotFound
		}

		return nil
	})
}

// ListByBranchAndDate implementa appointment.Repository.ListByBranchAndDate
func (r *PostgresAppointmentRepository) ListByBranchAndDate(ctx context.Context, branchID, date string) ([]*appointment.Appointment, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE branch_id = $1 AND date = $2
		ORDER BY start_time ASC
	`

	rows, err := conn.Query(ctx, query, branchID, date)
	if err != nil {
		return nil, fmt.Errorf("error al listar citas: %w", err)
	}
	defer rows.Close()

	var appointments []*appointment.Appointment

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer cita: %w", err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	for _, a := range appointments {
		a.Items, err = r.loadItems(ctx, conn, a.ID)
		if err != nil {
			return nil, err
		}
	}

	return appointments, nil
}

// ListByBranch implementa appointment.Repository.ListByBranch
func (r *PostgresAppointmentRepository) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*appointment.Appointment, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE branch_id = $1
		ORDER BY date DESC, start_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn.Query(ctx, query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar citas: %w", err)
	}
	defer rows.Close()

	var appointments []*appointment.Appointment

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer cita: %w", err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar resultados: %w", err)
	}

	for _, a := range appointments {
		a.Items, err = r.loadItems(ctx, conn, a.ID)
		if err != nil {
			return nil, err
		}
	}

	return appointments, nil
}

// CountCompletedByBranchAndDate implementa appointment.Repository.CountCompletedByBranchAndDate
func (r *PostgresAppointmentRepository) CountCompletedByBranchAndDate(ctx context.Context, branchID, date string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM appointments WHERE branch_id = $1 AND date = $2 AND status = $3",
		branchID, date, string(appointment.StatusCompleted)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar citas completadas: %w", err)
	}

	return count, nil
}

// CountByBranch implementa appointment.Repository.CountByBranch
func (r *PostgresAppointmentRepository) CountByBranch(ctx context.Context, branchID string) (int, error) {
	conn, err := r.db.GetTenantConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM appointments WHERE branch_id = $1", branchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar citas: %w", err)
	}

	return count, nil
}
