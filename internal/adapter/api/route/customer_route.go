package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupCustomerRoutes configura las rutas del módulo de clientes
func SetupCustomerRoutes(router *gin.RouterGroup, customerController *controller.CustomerController) {
	customerRouter := router.Group("/customers")
	customerRouter.Use(auth.JWTAuthMiddleware())
	{
		customerRouter.POST("", customerController.Create)
		customerRouter.GET("", customerController.List)
		// La búsqueda alimenta la columna de cliente del editor de líneas
		customerRouter.GET("/search", customerController.Search)
		customerRouter.GET("/:id", customerController.GetByID)
		customerRouter.PUT("/:id", customerController.Update)
		customerRouter.DELETE("/:id", customerController.Delete)
	}
}
