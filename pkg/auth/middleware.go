package auth

import (
	"net/http"
	"strings"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/tenant"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware crea un middleware de autenticación JWT
func JWTAuthMiddleware() gin.HandlerFunc {
	jwtService, err := NewJWTService()
	if err != nil {
		// Sin servicio JWT no hay autenticación posible
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Error al configurar la autenticación",
				"El servicio JWT no se inicializó correctamente",
			))
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticación requerida",
				"No se proporcionó el encabezado Authorization",
			))
			return
		}

		// Verificar el formato "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use el formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if err == ErrExpiredToken {
				message = "Token expirado"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		// Guardar las claims en el contexto
		c.Set("user_id", claims.UserID)
		c.Set("tenant_id", claims.TenantID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("user_role", claims.Role)
		c.Set("branch_id", claims.BranchID)

		// Definir el tenant ID para el middleware de tenant
		c.Request = c.Request.WithContext(tenant.SetTenantIDContext(c.Request.Context(), claims.TenantID))

		c.Next()
	}
}

// RoleAuthMiddleware crea un middleware que verifica el rol del usuario
func RoleAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoleVal, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticación requerida",
				"",
			))
			return
		}

		userRole, ok := userRoleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Error de tipo",
				"No se pudo obtener el rol del usuario",
			))
			return
		}

		authorized := false
		for _, r := range roles {
			if userRole == r {
				authorized = true
				break
			}
		}

		if !authorized {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Acceso denegado",
				"No tiene permiso para acceder a este recurso",
			))
			return
		}

		c.Next()
	}
}

// CurrentUserID obtiene el ID del usuario autenticado del contexto
func CurrentUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	userIDStr, _ := userID.(string)
	return userIDStr
}
