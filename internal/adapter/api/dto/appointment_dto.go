package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/appointment"
	"github.com/shopspring/decimal"
)

// AppointmentItemRequest representa una línea de servicio en una cita.
// El nombre, la duración y el precio se congelan al agendar; cambios
// posteriores del catálogo no alteran citas ya creadas
type AppointmentItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// AppointmentRequest representa la estructura de datos para crear/actualizar una cita
type AppointmentRequest struct {
	CustomerID string                   `json:"customer_id" binding:"required"`
	StylistID  string                   `json:"stylist_id" binding:"required"`
	Date       string                   `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime  string                   `json:"start_time" binding:"required"`
	Notes      string                   `json:"notes"`
	Items      []AppointmentItemRequest `json:"items" binding:"required,min=1"`
}

// RescheduleRequest representa los datos para reagendar una cita
type RescheduleRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

// AppointmentItemResponse representa una línea de cita en la respuesta
type AppointmentItemResponse struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Duration  int             `json:"duration"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// AppointmentResponse representa la estructura de respuesta para una cita
type AppointmentResponse struct {
	ID          string                    `json:"id"`
	BranchID    string                    `json:"branch_id"`
	CustomerID  string                    `json:"customer_id"`
	StylistID   string                    `json:"stylist_id"`
	Date        string                    `json:"date"`
	StartTime   string                    `json:"start_time"`
	Status      string                    `json:"status"`
	Items       []AppointmentItemResponse `json:"items"`
	Total       decimal.Decimal           `json:"total"`
	Notes       string                    `json:"notes"`
	CompletedAt *time.Time                `json:"completed_at,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// AppointmentListResponse representa la respuesta de listado de citas
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalCount   int                   `json:"total_count"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
}

// ToAppointmentResponse convierte un modelo de dominio en una respuesta DTO
func ToAppointmentResponse(a *appointment.Appointment) AppointmentResponse {
	items := make([]AppointmentItemResponse, len(a.Items))
	for i, item := range a.Items {
		items[i] = AppointmentItemResponse{
			ID:        item.ID,
			ServiceID: item.ServiceID,
			Name:      item.Name,
			Duration:  item.Duration,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}

	return AppointmentResponse{
		ID:          a.ID,
		BranchID:    a.BranchID,
		CustomerID:  a.CustomerID,
		StylistID:   a.StylistID,
		Date:        a.Date,
		StartTime:   a.StartTime,
		Status:      string(a.Status),
		Items:       items,
		Total:       a.Total,
		Notes:       a.Notes,
		CompletedAt: a.CompletedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAppointmentListResponse convierte una lista de citas al formato de respuesta
func ToAppointmentListResponse(appointments []*appointment.Appointment, totalCount, page, pageSize int) AppointmentListResponse {
	response := AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
		TotalCount:   totalCount,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   calculateTotalPages(totalCount, pageSize),
	}

	for i, a := range appointments {
		response.Appointments[i] = ToAppointmentResponse(a)
	}

	return response
}
