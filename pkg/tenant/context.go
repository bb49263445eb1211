package tenant

import (
	"context"
)

type contextKey string

const (
	// tenantIDKey es la clave usada para guardar el tenant ID en el contexto
	tenantIDKey contextKey = "tenant_id"
)

// SetTenantIDContext guarda el tenant ID en el contexto
func SetTenantIDContext(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// GetTenantIDFromContext obtiene el tenant ID de un context.Context
func GetTenantIDFromContext(ctx context.Context) string {
	if tenantID, ok := ctx.Value(tenantIDKey).(string); ok {
		return tenantID
	}
	return ""
}

// GetTenantID obtiene el tenant ID tanto de un contexto de Gin como de un
// context.Context plano
func GetTenantID(c interface{}) string {
	if gc, ok := c.(interface{ GetString(string) string }); ok {
		if tenantID := gc.GetString("tenant_id"); tenantID != "" {
			return tenantID
		}
	}

	if ctx, ok := c.(context.Context); ok {
		return GetTenantIDFromContext(ctx)
	}

	return ""
}
