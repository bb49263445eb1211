package branch

import (
	"context"

	"github.com/gin-gonic/gin"
)

// branchIDKey es la clave usada para guardar el branch_id en el contexto
type branchIDKey struct{}

// BranchMiddleware crea un middleware que captura el encabezado branch-id
func BranchMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		branchID := c.GetHeader("branch-id")
		if branchID != "" {
			c.Set("branch_id", branchID)
			// También va en el contexto estándar para las funciones que
			// reciben context.Context
			ctx := context.WithValue(c.Request.Context(), branchIDKey{}, branchID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// GetBranchID recupera el branch_id del contexto, si existe
func GetBranchID(ctx context.Context) string {
	if branchID, ok := ctx.Value(branchIDKey{}).(string); ok {
		return branchID
	}
	return ""
}
