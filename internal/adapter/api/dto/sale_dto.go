package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/payment"
	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// SubPaymentRequest representa un sub-pago dentro de un cobro mixto
type SubPaymentRequest struct {
	Method string          `json:"method" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SaleItemRequest representa una línea de venta
type SaleItemRequest struct {
	Kind        string `json:"kind" binding:"required"` // servicio o producto
	ReferenceID string `json:"reference_id" binding:"required"`
	Quantity    int    `json:"quantity"`
}

// SaleRequest representa la estructura de datos para registrar una venta.
// Con método mixto los sub-pagos deben venir y sumar el total
type SaleRequest struct {
	CustomerID    string              `json:"customer_id"`
	AppointmentID string              `json:"appointment_id"` // Vacío en venta directa
	Items         []SaleItemRequest   `json:"items" binding:"required,min=1"`
	Method        string              `json:"method" binding:"required"`
	SubPayments   []SubPaymentRequest `json:"sub_payments"`
}

// SubPaymentResponse representa un sub-pago en la respuesta
type SubPaymentResponse struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// SaleItemResponse representa una línea de venta en la respuesta
type SaleItemResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	ReferenceID string          `json:"reference_id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse representa la estructura de respuesta para una venta
type SaleResponse struct {
	ID            string               `json:"id"`
	BranchID      string               `json:"branch_id"`
	UserID        string               `json:"user_id"`
	CustomerID    string               `json:"customer_id,omitempty"`
	AppointmentID string               `json:"appointment_id,omitempty"`
	Date          string               `json:"date"`
	Items         []SaleItemResponse   `json:"items"`
	Total         decimal.Decimal      `json:"total"`
	Method        string               `json:"method"`
	SubPayments   []SubPaymentResponse `json:"sub_payments,omitempty"`
	Direct        bool                 `json:"direct"`
	CreatedAt     time.Time            `json:"created_at"`
}

// SaleListResponse representa la respuesta de listado de ventas
type SaleListResponse struct {
	Sales      []SaleResponse `json:"sales"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ToSubPayments convierte los sub-pagos de la petición al modelo de dominio
func ToSubPayments(subs []SubPaymentRequest) []payment.SubPayment {
	if len(subs) == 0 {
		return nil
	}

	result := make([]payment.SubPayment, len(subs))
	for i, sub := range subs {
		result[i] = payment.SubPayment{
			Method: payment.Method(sub.Method),
			Amount: sub.Amount,
		}
	}
	return result
}

// ToSaleResponse convierte un modelo de dominio en una respuesta DTO
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:          item.ID,
			Kind:        string(item.Kind),
			ReferenceID: item.ReferenceID,
			Name:        item.Name,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		}
	}

	var subs []SubPaymentResponse
	for _, sub := range s.SubPayments {
		subs = append(subs, SubPaymentResponse{
			Method: string(sub.Method),
			Amount: sub.Amount,
		})
	}

	return SaleResponse{
		ID:            s.ID,
		BranchID:      s.BranchID,
		UserID:        s.UserID,
		CustomerID:    s.CustomerID,
		AppointmentID: s.AppointmentID,
		Date:          s.Date,
		Items:         items,
		Total:         s.Total,
		Method:        string(s.Method),
		SubPayments:   subs,
		Direct:        s.IsDirect(),
		CreatedAt:     s.CreatedAt,
	}
}

// ToSaleListResponse convierte una lista de ventas al formato de respuesta
func ToSaleListResponse(sales []*sale.Sale, totalCount, page, pageSize int) SaleListResponse {
	response := SaleListResponse{
		Sales:      make([]SaleResponse, len(sales)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, s := range sales {
		response.Sales[i] = ToSaleResponse(s)
	}

	return response
}
