package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/tenant"
)

// TenantRequest representa la estructura de datos para crear/actualizar un tenant
type TenantRequest struct {
	Name        string `json:"name" binding:"required"`
	Document    string `json:"document" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	PlanType    string `json:"plan_type"`
	MaxBranches int    `json:"max_branches"`
}

// TenantResponse representa la estructura de respuesta para un tenant
type TenantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Document    string    `json:"document"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	Schema      string    `json:"schema"`
	PlanType    string    `json:"plan_type"`
	MaxBranches int       `json:"max_branches"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TenantListResponse representa la respuesta de listado de tenants
type TenantListResponse struct {
	Tenants    []TenantResponse `json:"tenants"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ToTenantResponse convierte un modelo de dominio en una respuesta DTO
func ToTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		Document:    t.Document,
		Email:       t.Email,
		Phone:       t.Phone,
		Status:      string(t.Status),
		Schema:      t.Schema,
		PlanType:    t.PlanType,
		MaxBranches: t.MaxBranches,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTenantListResponse convierte una lista de tenants al formato de respuesta
func ToTenantListResponse(tenants []*tenant.Tenant, totalCount, page, pageSize int) TenantListResponse {
	response := TenantListResponse{
		Tenants:    make([]TenantResponse, len(tenants)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, t := range tenants {
		response.Tenants[i] = ToTenantResponse(t)
	}

	return response
}
