package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ServiceRequest representa la estructura de datos para crear/actualizar un servicio
type ServiceRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Duration int             `json:"duration" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Active   *bool           `json:"active"`
}

// ServiceResponse representa la estructura de respuesta para un servicio
type ServiceResponse struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Duration  int             `json:"duration"`
	Price     decimal.Decimal `json:"price"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ServiceListResponse representa la respuesta de listado de servicios
type ServiceListResponse struct {
	Services   []ServiceResponse `json:"services"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ProductRequest representa la estructura de datos para crear/actualizar un producto
type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
	Active   *bool           `json:"active"`
}

// ProductResponse representa la estructura de respuesta para un producto
type ProductResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"min_stock"`
	BelowMinStock bool            `json:"below_min_stock"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse representa la respuesta de listado de productos
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// StockAdjustmentRequest representa un ajuste manual de existencias
type StockAdjustmentRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CandidateResponse representa una opción de las columnas de búsqueda del
// editor de líneas: servicios o productos con su etiqueta y precio
type CandidateResponse struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	SubLabel string          `json:"sub_label,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Duration int             `json:"duration,omitempty"` // Solo servicios
}

// ToServiceResponse convierte un modelo de dominio en una respuesta DTO
func ToServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:        s.ID,
		TenantID:  s.TenantID,
		Name:      s.Name,
		Category:  s.Category,
		Duration:  s.Duration,
		Price:     s.Price,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToServiceListResponse convierte una lista de servicios al formato de respuesta
func ToServiceListResponse(services []*catalog.Service, totalCount, page, pageSize int) ServiceListResponse {
	response := ServiceListResponse{
		Services:   make([]ServiceResponse, len(services)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, s := range services {
		response.Services[i] = ToServiceResponse(s)
	}

	return response
}

// ToProductResponse convierte un modelo de dominio en una respuesta DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		Price:         p.Price,
		Cost:          p.Cost,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		BelowMinStock: p.BelowMinStock(),
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductListResponse convierte una lista de productos al formato de respuesta
func ToProductListResponse(products []*catalog.Product, totalCount, page, pageSize int) ProductListResponse {
	response := ProductListResponse{
		Products:   make([]ProductResponse, len(products)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, p := range products {
		response.Products[i] = ToProductResponse(p)
	}

	return response
}

// ToServiceCandidates convierte servicios activos en candidatos del editor
func ToServiceCandidates(services []*catalog.Service) []CandidateResponse {
	candidates := make([]CandidateResponse, len(services))
	for i, s := range services {
		candidates[i] = CandidateResponse{
			ID:       s.ID,
			Label:    s.Name,
			SubLabel: s.Category,
			Price:    s.Price,
			Duration: s.Duration,
		}
	}
	return candidates
}

// ToProductCandidates convierte productos activos en candidatos del editor
func ToProductCandidates(products []*catalog.Product) []CandidateResponse {
	candidates := make([]CandidateResponse, len(products))
	for i, p := range products {
		candidates[i] = CandidateResponse{
			ID:       p.ID,
			Label:    p.Name,
			SubLabel: p.SKU,
			Price:    p.Price,
		}
	}
	return candidates
}
