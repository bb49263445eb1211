package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/gin-gonic/gin"
)

// SetupTenantRoutes configura las rutas del módulo de tenants. Estas rutas
// son administrativas y no pasan por el middleware de tenant
func SetupTenantRoutes(router *gin.RouterGroup, tenantController *controller.TenantController) {
	tenantRouter := router.Group("/tenants")
	{
		tenantRouter.POST("", tenantController.Create)
		tenantRouter.GET("", tenantController.List)
		tenantRouter.GET("/:id", tenantController.GetByID)
		tenantRouter.PUT("/:id", tenantController.Update)
		tenantRouter.DELETE("/:id", tenantController.Delete)
		tenantRouter.PATCH("/:id/status", tenantController.UpdateStatus)
	}
}
