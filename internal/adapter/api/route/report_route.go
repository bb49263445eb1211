package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
)

// SetupReportRoutes configura las rutas de reportes
func SetupReportRoutes(router *gin.RouterGroup, reportController *controller.ReportController) {
	reportRouter := router.Group("/reports")
	reportRouter.Use(auth.JWTAuthMiddleware(), branchpkg.BranchMiddleware())
	{
		reportRouter.GET("/daily", reportController.Daily)
	}
}
