package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=100"`
	Stock      int             `json:"stock" binding:"min=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	ExpiresAt  *string         `json:"expires_at"`
	SupplierID *uuid.UUID      `json:"supplier_id"`
	CategoryID *uuid.UUID      `json:"category_id"`
	Status     *string         `json:"status"`
}

// UpdateProductRequest represents a product update request. Absent fields
// leave the current values untouched.
type UpdateProductRequest struct {
	Name       *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Stock      *int             `json:"stock" binding:"omitempty,min=0"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	UnitCost   *decimal.Decimal `json:"unit_cost"`
	ExpiresAt  *string          `json:"expires_at"`
	SupplierID *uuid.UUID       `json:"supplier_id"`
	CategoryID *uuid.UUID       `json:"category_id"`
	Status     *string          `json:"status"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	LowStock   bool   `form:"low_stock"`
	Threshold  int    `form:"threshold"`
	CategoryID string `form:"category_id"`
	SupplierID string `form:"supplier_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
