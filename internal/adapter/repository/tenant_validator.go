package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/tenant"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// DatabaseTenantValidator valida tenants contra la base de datos
type DatabaseTenantValidator struct {
	db *database.PostgresDB
}

// NewDatabaseTenantValidator crea una nueva instancia de DatabaseTenantValidator
func NewDatabaseTenantValidator(db *database.PostgresDB) *DatabaseTenantValidator {
	return &DatabaseTenantValidator{
		db: db,
	}
}

// ValidateTenant verifica que el tenant exista y esté activo
func (v *DatabaseTenantValidator) ValidateTenant(tenantID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := v.db.GetConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	var status string
	err = conn.QueryRow(ctx, "SELECT status FROM tenants WHERE id = $1", tenantID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error al validar tenant: %w", err)
	}

	return tenant.Status(status) == tenant.StatusActive, nil
}
