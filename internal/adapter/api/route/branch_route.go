package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupBranchRoutes configura las rutas del módulo de sucursales. El grupo
// recibido ya pasa por el middleware de tenant
func SetupBranchRoutes(router *gin.RouterGroup, branchController *controller.BranchController) {
	branchRouter := router.Group("/branches")
	branchRouter.Use(auth.JWTAuthMiddleware())
	{
		branchRouter.POST("", branchController.Create)
		branchRouter.GET("", branchController.List)
		branchRouter.GET("/:id", branchController.GetByID)
		branchRouter.PUT("/:id", branchController.Update)
		branchRouter.DELETE("/:id", branchController.Delete)
		branchRouter.PATCH("/:id/status", branchController.UpdateStatus)
	}
}
