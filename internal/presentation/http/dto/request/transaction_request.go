package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseLineRequest represents one purchase line. The unit price is
// mandatory: a purchase records what was actually paid.
type PurchaseLineRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price" binding:"required"`
}

// SaleLineRequest represents one sale line. The unit price is optional and
// defaults to the product's current price.
type SaleLineRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseRequest represents a purchase registration request
type CreatePurchaseRequest struct {
	SupplierID *uuid.UUID            `json:"supplier_id"`
	Date       string                `json:"date"`
	Status     *string               `json:"status"`
	Items      []PurchaseLineRequest `json:"items" binding:"required,dive"`
}

// UpdatePurchaseRequest represents a purchase update request. Absent fields
// leave the current values untouched; an absent items array keeps the
// existing line set.
type UpdatePurchaseRequest struct {
	SupplierID *uuid.UUID            `json:"supplier_id"`
	Date       *string               `json:"date"`
	Status     *string               `json:"status"`
	Items      []PurchaseLineRequest `json:"items" binding:"omitempty,dive"`
}

// CreateSaleRequest represents a sale registration request
type CreateSaleRequest struct {
	ClientID *uuid.UUID        `json:"client_id"`
	Date     string            `json:"date"`
	Status   *string           `json:"status"`
	Items    []SaleLineRequest `json:"items" binding:"required,dive"`
}

// UpdateSaleRequest represents a sale update request
type UpdateSaleRequest struct {
	ClientID *uuid.UUID        `json:"client_id"`
	Date     *string           `json:"date"`
	Status   *string           `json:"status"`
	Items    []SaleLineRequest `json:"items" binding:"omitempty,dive"`
}

// TransactionFilterRequest represents purchase or sale filter parameters.
// WithParty narrows the listing to transactions tied to a client or supplier.
type TransactionFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	From      string `form:"from"`
	To        string `form:"to"`
	PartyID   string `form:"party_id"`
	WithParty bool   `form:"with_party"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
