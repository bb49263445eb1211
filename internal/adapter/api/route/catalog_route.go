package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configura las rutas del catálogo de servicios y
// productos. Las rutas de candidatos alimentan las columnas de búsqueda
// del editor de líneas
func SetupCatalogRoutes(router *gin.RouterGroup, serviceController *controller.ServiceController, productController *controller.ProductController) {
	serviceRouter := router.Group("/services")
	serviceRouter.Use(auth.JWTAuthMiddleware())
	{
		serviceRouter.POST("", serviceController.Create)
		serviceRouter.GET("", serviceController.List)
		serviceRouter.GET("/candidates", serviceController.Candidates)
		serviceRouter.GET("/:id", serviceController.GetByID)
		serviceRouter.PUT("/:id", serviceController.Update)
		serviceRouter.DELETE("/:id", serviceController.Delete)
	}

	productRouter := router.Group("/products")
	productRouter.Use(auth.JWTAuthMiddleware())
	{
		productRouter.POST("", productController.Create)
		productRouter.GET("", productController.List)
		productRouter.GET("/candidates", productController.Candidates)
		productRouter.GET("/:id", productController.GetByID)
		productRouter.PUT("/:id", productController.Update)
		productRouter.DELETE("/:id", productController.Delete)
		productRouter.PATCH("/:id/stock", productController.AdjustStock)
	}
}
