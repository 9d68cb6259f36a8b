package repository

import (
	"context"
	"time"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	domainRepo "github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	if limit <= 0 {
		limit = 10
	}
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id AS product_id,
			p.name AS product_name,
			COALESCE(SUM(si.quantity), 0) AS quantity_sold,
			COALESCE(SUM(si.subtotal), 0) AS revenue
		FROM sale_line_items si
		JOIN products p ON p.id = si.product_id
		GROUP BY p.id, p.name
		ORDER BY quantity_sold DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) TopClients(ctx context.Context, limit int) ([]domainRepo.PartyTotalResult, error) {
	if limit <= 0 {
		limit = 10
	}
	var results []domainRepo.PartyTotalResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id AS party_id,
			c.name AS party_name,
			COUNT(s.id) AS transaction_count,
			COALESCE(SUM(s.total), 0) AS total_amount
		FROM clients c
		JOIN sales s ON s.client_id = c.id
		GROUP BY c.id, c.name
		ORDER BY total_amount DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) TopSuppliers(ctx context.Context, limit int) ([]domainRepo.PartyTotalResult, error) {
	if limit <= 0 {
		limit = 10
	}
	var results []domainRepo.PartyTotalResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			sp.id AS party_id,
			sp.name AS party_name,
			COUNT(p.id) AS transaction_count,
			COALESCE(SUM(p.total), 0) AS total_amount
		FROM suppliers sp
		JOIN purchases p ON p.supplier_id = sp.id
		GROUP BY sp.id, sp.name
		ORDER BY total_amount DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) TopCategoriesByStock(ctx context.Context, limit int) ([]domainRepo.CategoryStockResult, error) {
	if limit <= 0 {
		limit = 10
	}
	var results []domainRepo.CategoryStockResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id AS category_id,
			c.name AS category_name,
			COUNT(p.id) AS product_count,
			COALESCE(SUM(p.stock), 0) AS total_stock
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY total_stock DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	return results, err
}

// InventoryValuation returns the sum of stock multiplied by unit cost over
// all products.
func (r *analyticsRepository) InventoryValuation(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Value decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(stock * unit_cost), 0) AS value FROM products
	`).Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Value, nil
}

func (r *analyticsRepository) SaleStats(ctx context.Context, from, to time.Time) (*domainRepo.PeriodStats, error) {
	var stats domainRepo.PeriodStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(id) AS count, COALESCE(SUM(total), 0) AS amount
		FROM sales
		WHERE date >= ? AND date <= ?
	`, from, to).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *analyticsRepository) PurchaseStats(ctx context.Context, from, to time.Time) (*domainRepo.PeriodStats, error) {
	var stats domainRepo.PeriodStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(id) AS count, COALESCE(SUM(total), 0) AS amount
		FROM purchases
		WHERE date >= ? AND date <= ?
	`, from, to).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *analyticsRepository) Dashboard(ctx context.Context, lowStockThreshold int) (*domainRepo.DashboardStats, error) {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 5
	}

	stats := &domainRepo.DashboardStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&entity.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Client{}).Count(&stats.TotalClients).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Supplier{}).Count(&stats.TotalSuppliers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Sale{}).Count(&stats.TotalSales).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Purchase{}).Count(&stats.TotalPurchases).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Product{}).
		Where("stock < ?", lowStockThreshold).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	value, err := r.InventoryValuation(ctx)
	if err != nil {
		return nil, err
	}
	stats.InventoryValue = value

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
	saleStats, err := r.SaleStats(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	stats.MonthSaleAmount = saleStats.Amount

	return stats, nil
}
