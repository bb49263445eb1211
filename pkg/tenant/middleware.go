package tenant

import (
	"net/http"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TenantValidator define la interfaz de validación de tenant
type TenantValidator interface {
	ValidateTenant(tenantID string) (bool, error)
}

// TenantMiddleware crea un middleware que valida el tenant de la petición
func TenantMiddleware(validator TenantValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Obtener el tenant ID del encabezado
		tenantID := c.GetHeader("tenant-id")
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"Tenant ID no proporcionado",
				"El encabezado 'tenant-id' es obligatorio",
			))
			return
		}

		// Validar el tenant
		valid, err := validator.ValidateTenant(tenantID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Error al validar el tenant",
				err.Error(),
			))
			return
		}

		if !valid {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Tenant inválido",
				"El tenant indicado no existe o está inactivo",
			))
			return
		}

		// Guardar el tenant ID en el contexto
		c.Set("tenant_id", tenantID)
		c.Request = c.Request.WithContext(SetTenantIDContext(c.Request.Context(), tenantID))

		c.Next()
	}
}
