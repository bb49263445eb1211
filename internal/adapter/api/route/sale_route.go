package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
)

// SetupSaleRoutes configura las rutas del módulo de ventas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	saleRouter.Use(auth.JWTAuthMiddleware(), branchpkg.BranchMiddleware())
	{
		saleRouter.POST("", saleController.Create)
		saleRouter.GET("", saleController.List)
		saleRouter.GET("/:id", saleController.GetByID)
	}
}
