package tenant

import "errors"

// Errores comunes de las operaciones de tenant
var (
	// ErrTenantNotSpecified ocurre cuando no se proporciona un ID de tenant
	ErrTenantNotSpecified = errors.New("tenant ID no especificado")

	// ErrTenantNotFound ocurre cuando el tenant no existe
	ErrTenantNotFound = errors.New("tenant no encontrado")

	// ErrTenantNotActive ocurre cuando el tenant no está activo
	ErrTenantNotActive = errors.New("el tenant no está activo")
)
