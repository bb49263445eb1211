package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
)

// SetupPurchaseRoutes configura las rutas del módulo de compras
func SetupPurchaseRoutes(router *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	purchaseRouter := router.Group("/purchases")
	purchaseRouter.Use(auth.JWTAuthMiddleware(), branchpkg.BranchMiddleware())
	{
		purchaseRouter.POST("", purchaseController.Create)
		purchaseRouter.GET("", purchaseController.List)
		purchaseRouter.GET("/:id", purchaseController.GetByID)
		purchaseRouter.PATCH("/:id/receive", purchaseController.Receive)
		purchaseRouter.PATCH("/:id/cancel", purchaseController.Cancel)
	}
}
