package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
)

// SetupShiftRoutes configura las rutas de turnos y cortes de caja
func SetupShiftRoutes(router *gin.RouterGroup, shiftController *controller.ShiftController) {
	shiftRouter := router.Group("/shifts")
	shiftRouter.Use(auth.JWTAuthMiddleware(), branchpkg.BranchMiddleware())
	{
		shiftRouter.POST("", shiftController.Open)
		shiftRouter.GET("", shiftController.List)
		shiftRouter.GET("/active", shiftController.GetActive)
		shiftRouter.GET("/pending-cut", shiftController.ListPendingCut)
		shiftRouter.GET("/:id", shiftController.GetByID)
		shiftRouter.GET("/:id/summary", shiftController.Summary)
		shiftRouter.POST("/:id/close", shiftController.Close)
		shiftRouter.POST("/:id/cut", shiftController.CreateCut)
		shiftRouter.GET("/:id/cut", shiftController.GetCut)
	}

	cutRouter := router.Group("/cash-cuts")
	cutRouter.Use(auth.JWTAuthMiddleware(), branchpkg.BranchMiddleware())
	{
		cutRouter.GET("", shiftController.ListCuts)
	}
}
