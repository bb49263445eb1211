package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/branch"
)

// BranchRequest representa la estructura de datos para crear/actualizar una sucursal
type BranchRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	IsMain  bool   `json:"is_main"`
}

// BranchResponse representa la estructura de respuesta para una sucursal
type BranchResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	IsMain    bool      `json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BranchListResponse representa la respuesta de listado de sucursales
type BranchListResponse struct {
	Branches   []BranchResponse `json:"branches"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ToBranchResponse convierte un modelo de dominio en una respuesta DTO
func ToBranchResponse(b *branch.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		TenantID:  b.TenantID,
		Name:      b.Name,
		Code:      b.Code,
		Address:   b.Address,
		City:      b.City,
		Phone:     b.Phone,
		Email:     b.Email,
		Status:    string(b.Status),
		IsMain:    b.IsMain,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBranchListResponse convierte una lista de sucursales al formato de respuesta
func ToBranchListResponse(branches []*branch.Branch, totalCount, page, pageSize int) BranchListResponse {
	response := BranchListResponse{
		Branches:   make([]BranchResponse, len(branches)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, b := range branches {
		response.Branches[i] = ToBranchResponse(b)
	}

	return response
}
