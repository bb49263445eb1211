package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/dto"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/appointment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/catalog"
	branchpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/branch"
	"github.com/gin-gonic/gin"
)

// AppointmentController gestiona las peticiones relacionadas con citas
type AppointmentController struct {
	appointmentRepository appointment.Repository
	serviceRepository     catalog.ServiceRepository
}

// NewAppointmentController crea una nueva instancia de AppointmentController
func NewAppointmentController(appointmentRepository appointment.Repository, serviceRepository catalog.ServiceRepository) *AppointmentController {
	return &AppointmentController{
		appointmentRepository: appointmentRepository,
		serviceRepository:     serviceRepository,
	}
}

// buildItems congela las líneas de la cita a partir del catálogo vigente.
// El nombre, la duración y el precio quedan copiados en la línea
func (c *AppointmentController) buildItems(ctx *gin.Context, requests []dto.AppointmentItemRequest) ([]appointment.Item, error) {
	items := make([]appointment.Item, 0, len(requests))
	for _, req := range requests {
		svc, err := c.serviceRepository.FindByID(ctx, req.ServiceID)
		if err != nil {
			return nil, err
		}

		quantity := req.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		items = append(items, appointment.NewItem(svc.ID, svc.Name, svc.Duration, svc.Price, quantity))
	}
	return items, nil
}

// Create agenda una nueva cita
// @Summary Agenda una nueva cita
// @Description Crea una cita con sus líneas de servicio. El precio y la duración se congelan al agendar
// @Tags appointments
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param appointment body dto.AppointmentRequest true "Datos de la cita"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments [post]
func (c *AppointmentController) Create(ctx *gin.Context) {
	var request dto.AppointmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	items, err := c.buildItems(ctx, request.Items)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Servicio no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al armar las líneas de la cita", err.Error()))
		return
	}

	a, err := appointment.NewAppointment(branchID, request.CustomerID, request.StylistID, request.Date, request.StartTime, request.Notes, items)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Datos inválidos", err.Error()))
		return
	}

	if err := c.appointmentRepository.Create(ctx, a); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al crear cita", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAppointmentResponse(a))
}

// GetByID busca una cita por su ID
// @Summary Busca una cita por ID
// @Description Retorna los datos de una cita con sus líneas
// @Tags appointments
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la cita"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id} [get]
func (c *AppointmentController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	a, err := c.appointmentRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cita no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar cita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
}

// List lista las citas de la sucursal
// @Summary Lista las citas
// @Description Retorna las citas de la sucursal. Con el parámetro date filtra por día
// @Tags appointments
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param branch-id header string true "ID de la sucursal"
// @Param date query string false "Día calendario (YYYY-MM-DD)"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamaño de página" default(10)
// @Success 200 {object} dto.AppointmentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments [get]
func (c *AppointmentController) List(ctx *gin.Context) {
	branchID := branchpkg.GetBranchID(ctx)
	if branchID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Branch ID no encontrado", ""))
		return
	}

	if date := ctx.Query("date"); date != "" {
		appointments, err := c.appointmentRepository.ListByBranchAndDate(ctx, branchID, date)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar citas", err.Error()))
			return
		}

		ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, len(appointments), 1, len(appointments)))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize

	appointments, err := c.appointmentRepository.ListByBranch(ctx, branchID, pagination.PageSize, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al listar citas", err.Error()))
		return
	}

	totalCount, err := c.appointmentRepository.CountByBranch(ctx, branchID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al contar citas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentListResponse(appointments, totalCount, pagination.Page, pagination.PageSize))
}

// Update actualiza una cita reemplazando sus líneas
// @Summary Actualiza una cita
// @Description Reemplaza los datos y líneas de una cita. El editor siempre envía el conjunto vigente de líneas
// @Tags appointments
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la cita"
// @Param appointment body dto.AppointmentRequest true "Datos de la cita"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id} [put]
func (c *AppointmentController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.AppointmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	a, err := c.appointmentRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cita no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar cita", err.Error()))
		return
	}

	if a.Status == appointment.StatusCompleted {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "La cita ya fue completada", ""))
		return
	}

	items, err := c.buildItems(ctx, request.Items)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Servicio no encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al armar las líneas de la cita", err.Error()))
		return
	}

	a.CustomerID = request.CustomerID
	a.StylistID = request.StylistID
	a.Date = request.Date
	a.StartTime = request.StartTime
	a.Notes = request.Notes
	a.ReplaceItems(items)

	if err := c.appointmentRepository.Update(ctx, a); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar cita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
}

// Reschedule cambia la fecha y hora de una cita
// @Summary Reagenda una cita
// @Description Cambia la fecha y hora de una cita que no esté completada
// @Tags appointments
// @Accept json
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la cita"
// @Param reschedule body dto.RescheduleRequest true "Nueva fecha y hora"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id}/reschedule [patch]
func (c *AppointmentController) Reschedule(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	var request dto.RescheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Petición inválida", err.Error()))
		return
	}

	c.transition(ctx, id, func(a *appointment.Appointment) error {
		return a.Reschedule(request.Date, request.StartTime)
	})
}

// Start marca una cita como en proceso
// @Summary Inicia una cita
// @Description Marca una cita agendada como en proceso
// @Tags appointments
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la cita"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id}/start [patch]
func (c *AppointmentController) Start(ctx *gin.Context) {
	c.transition(ctx, ctx.Param("id"), func(a *appointment.Appointment) error {
		return a.Start()
	})
}

// Complete marca una cita como completada
// @Summary Completa una cita
// @Description Marca una cita como completada. Las citas completadas alimentan el conteo del resumen de turno
// @Tags appointments
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la cita"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id}/complete [patch]
func (c *AppointmentController) Complete(ctx *gin.Context) {
	c.transition(ctx, ctx.Param("id"), func(a *appointment.Appointment) error {
		return a.Complete()
	})
}

// Cancel cancela una cita
// @Summary Cancela una cita
// @Description Cancela una cita que no esté completada
// @Tags appointments
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la cita"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id}/cancel [patch]
func (c *AppointmentController) Cancel(ctx *gin.Context) {
	c.transition(ctx, ctx.Param("id"), func(a *appointment.Appointment) error {
		return a.Cancel()
	})
}

// transition aplica un cambio de estado a la cita y la persiste
func (c *AppointmentController) transition(ctx *gin.Context, id string, apply func(*appointment.Appointment) error) {
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	a, err := c.appointmentRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cita no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al buscar cita", err.Error()))
		return
	}

	if err := apply(a); err != nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Transición inválida", err.Error()))
		return
	}

	if err := c.appointmentRepository.Update(ctx, a); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al actualizar cita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
}

// Delete elimina una cita
// @Summary Elimina una cita
// @Description Elimina una cita con sus líneas
// @Tags appointments
// @Produce json
// @Param tenant-id header string true "ID del tenant"
// @Param id path string true "ID de la cita"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /appointments/{id} [delete]
func (c *AppointmentController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID no proporcionado", ""))
		return
	}

	if err := c.appointmentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cita no encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error al eliminar cita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cita eliminada", nil))
}
