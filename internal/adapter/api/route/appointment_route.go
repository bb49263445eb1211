package route

import (
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
)

// SetupAppointmentRoutes configura las rutas del módulo de citas
func SetupAppointmentRoutes(router *gin.RouterGroup, appointmentController *controller.AppointmentController) {
	appointmentRouter := router.Group("/appointments")
	appointmentRouter.Use(auth.JWTAuthMiddleware(), branchpkg.BranchMiddleware())
	{
		appointmentRouter.POST("", appointmentController.Create)
		appointmentRouter.GET("", appointmentController.List)
		appointmentRouter.GET("/:id", appointmentController.GetByID)
		appointmentRouter.PUT("/:id", appointmentController.Update)
		appointmentRouter.DELETE("/:id", appointmentController.Delete)
		appointmentRouter.PATCH("/:id/reschedule", appointmentController.Reschedule)
		appointmentRouter.PATCH("/:id/start", appointmentController.Start)
		appointmentRouter.PATCH("/:id/complete", appointmentController.Complete)
		appointmentRouter.PATCH("/:id/cancel", appointmentController.Cancel)
	}
}
