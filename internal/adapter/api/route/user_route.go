package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configura las rutas del módulo de usuarios
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	userRouter := router.Group("/users")
	userRouter.Use(auth.JWTAuthMiddleware())
	{
		userRouter.POST("", userController.Create)
		userRouter.GET("", userController.List)
		userRouter.GET("/:id", userController.GetByID)
		userRouter.PUT("/:id", userController.Update)
		userRouter.DELETE("/:id", userController.Delete)
		userRouter.PATCH("/:id/status", userController.UpdateStatus)
	}
}
