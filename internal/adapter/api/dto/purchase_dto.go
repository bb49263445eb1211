package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/purchase"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest representa una línea de compra
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitCost  decimal.Decimal `json:"unit_cost" binding:"required"`
}

// PurchaseRequest representa la estructura de datos para registrar una compra
type PurchaseRequest struct {
	Supplier string                `json:"supplier" binding:"required"`
	Method   string                `json:"method" binding:"required"`
	Items    []PurchaseItemRequest `json:"items" binding:"required,min=1"`
}

// PurchaseItemResponse representa una línea de compra en la respuesta
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse representa la estructura de respuesta para una compra
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	BranchID   string                 `json:"branch_id"`
	UserID     string                 `json:"user_id"`
	Supplier   string                 `json:"supplier"`
	Date       string                 `json:"date"`
	Status     string                 `json:"status"`
	Items      []PurchaseItemResponse `json:"items"`
	Total      decimal.Decimal        `json:"total"`
	Method     string                 `json:"method"`
	ReceivedAt *time.Time             `json:"received_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// PurchaseListResponse representa la respuesta de listado de compras
type PurchaseListResponse struct {
	Purchases  []PurchaseResponse `json:"purchases"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToPurchaseResponse convierte un modelo de dominio en una respuesta DTO
func ToPurchaseResponse(p *purchase.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Subtotal:  item.Subtotal,
		}
	}

	return PurchaseResponse{
		ID:         p.ID,
		BranchID:   p.BranchID,
		UserID:     p.UserID,
		Supplier:   p.Supplier,
		Date:       p.Date,
		Status:     string(p.Status),
		Items:      items,
		Total:      p.Total,
		Method:     string(p.Method),
		ReceivedAt: p.ReceivedAt,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToPurchaseListResponse convierte una lista de compras al formato de respuesta
func ToPurchaseListResponse(purchases []*purchase.Purchase, totalCount, page, pageSize int) PurchaseListResponse {
	response := PurchaseListResponse{
		Purchases:  make([]PurchaseResponse, len(purchases)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, p := range purchases {
		response.Purchases[i] = ToPurchaseResponse(p)
	}

	return response
}
