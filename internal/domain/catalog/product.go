package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto vendible o de insumo (shampoo, tinte,
// etc.) con control de existencias
type Product struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"` // Precio de venta
	Cost      decimal.Decimal `json:"cost"`  // Costo de compra
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"` // Umbral de alerta de inventario
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewProduct crea un nuevo producto
func NewProduct(tenantID, name, sku, category string, price, cost decimal.Decimal, stock, minStock int) (*Product, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		SKU:       sku,
		Category:  category,
		Price:     price,
		Cost:      cost,
		Stock:     stock,
		MinStock:  minStock,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update actualiza los datos del producto
func (p *Product) Update(name, sku, category string, price, cost decimal.Decimal, minStock int) error {
	if name == "" {
		return ErrEmptyName
	}

	p.Name = name
	p.SKU = sku
	p.Category = category
	p.Price = price
	p.Cost = cost
	p.MinStock = minStock
	p.UpdatedAt = time.Now()
	return nil
}

// BelowMinStock indica si las existencias están por debajo del umbral
func (p *Product) BelowMinStock() bool {
	return p.Stock < p.MinStock
}
