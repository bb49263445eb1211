package dto

import (
	"time"

	"github.com/DiegoUniline/salon-sync-sub000/internal/domain/customer"
)

// CustomerRequest representa la estructura de datos para crear/actualizar un cliente
type CustomerRequest struct {
	BranchID  string `json:"branch_id"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Notes     string `json:"notes"`
}

// CustomerResponse representa la estructura de respuesta para un cliente
type CustomerResponse struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	BranchID    string     `json:"branch_id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	BirthDate   string     `json:"birth_date,omitempty"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	LastVisitAt *time.Time `json:"last_visit_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CustomerListResponse representa la respuesta de listado de clientes
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToCustomerResponse convierte un modelo de dominio en una respuesta DTO
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		BranchID:    c.BranchID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		BirthDate:   c.BirthDate,
		Notes:       c.Notes,
		Status:      string(c.Status),
		LastVisitAt: c.LastVisitAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCustomerListResponse convierte una lista de clientes al formato de respuesta
func ToCustomerListResponse(customers []*customer.Customer, totalCount, page, pageSize int) CustomerListResponse {
	response := CustomerListResponse{
		Customers:  make([]CustomerResponse, len(customers)),
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}

	for i, c := range customers {
		response.Customers[i] = ToCustomerResponse(c)
	}

	return response
}
