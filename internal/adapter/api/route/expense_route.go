package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
)

// SetupExpenseRoutes configura las rutas del módulo de gastos
func SetupExpenseRoutes(router *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenseRouter := router.Group("/expenses")
	expenseRouter.Use(auth.JWTAuthMiddleware(), branchpkg.BranchMiddleware())
	{
		expenseRouter.POST("", expenseController.Create)
		expenseRouter.GET("", expenseController.List)
		expenseRouter.GET("/:id", expenseController.GetByID)
		expenseRouter.DELETE("/:id", expenseController.Delete)
	}
}
