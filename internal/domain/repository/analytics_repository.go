package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopProductResult represents a best-selling product aggregate
type TopProductResult struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// PartyTotalResult represents a client or supplier ranked by transaction volume
type PartyTotalResult struct {
	PartyID          uuid.UUID       `json:"party_id"`
	PartyName        string          `json:"party_name"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// CategoryStockResult represents a category ranked by on-hand stock
type CategoryStockResult struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	ProductCount int64     `json:"product_count"`
	TotalStock   int64     `json:"total_stock"`
}

// PeriodStats represents transaction totals over a period
type PeriodStats struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardStats represents the general counters shown on the dashboard
type DashboardStats struct {
	TotalProducts   int64           `json:"total_products"`
	TotalClients    int64           `json:"total_clients"`
	TotalSuppliers  int64           `json:"total_suppliers"`
	TotalSales      int64           `json:"total_sales"`
	TotalPurchases  int64           `json:"total_purchases"`
	LowStockCount   int64           `json:"low_stock_count"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	MonthSaleAmount decimal.Decimal `json:"month_sale_amount"`
}

// AnalyticsRepository defines read-only reporting queries. There are no
// invariants to maintain here; everything is derived from committed rows.
type AnalyticsRepository interface {
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	TopClients(ctx context.Context, limit int) ([]PartyTotalResult, error)
	TopSuppliers(ctx context.Context, limit int) ([]PartyTotalResult, error)
	TopCategoriesByStock(ctx context.Context, limit int) ([]CategoryStockResult, error)
	InventoryValuation(ctx context.Context) (decimal.Decimal, error)
	SaleStats(ctx context.Context, from, to time.Time) (*PeriodStats, error)
	PurchaseStats(ctx context.Context, from, to time.Time) (*PeriodStats, error)
	Dashboard(ctx context.Context, lowStockThreshold int) (*DashboardStats, error)
}
