package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configura las rutas de autenticación
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// El login no requiere autenticación
		authRouter.POST("/login", authController.Login)

		// Renovar token usa el token vigente
		authRouter.POST("/refresh-token", authController.RefreshToken)

		// Información del usuario autenticado
		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
