package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the inventory. Stock is the current
// on-hand quantity and must never go negative at transaction commit.
type Product struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name       string             `gorm:"size:100;not null" json:"name"`
	Stock      int                `gorm:"not null;default:0" json:"stock"`
	UnitPrice  decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	UnitCost   decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"unit_cost"`
	ExpiresAt  *time.Time         `gorm:"type:date" json:"expires_at,omitempty"`
	SupplierID *uuid.UUID         `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	CategoryID *uuid.UUID         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Status     enum.ProductStatus `gorm:"size:10;not null;default:'activo'" json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`

	// Relationships
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier      *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	PurchaseItems []PurchaseItem `gorm:"foreignKey:ProductID" json:"-"`
	SaleItems     []SaleItem     `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsActive reports whether the product can be sold
func (p *Product) IsActive() bool {
	return p.Status == enum.ProductStatusActive
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
