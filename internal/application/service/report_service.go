package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/pkg/apperror"
)

// ReportService exposes read-only reporting over committed rows
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
) *ReportService {
	return &ReportService{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
	}
}

// BestSellingProducts returns products ranked by quantity sold
func (s *ReportService) BestSellingProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	return s.analyticsRepo.TopProducts(ctx, limit)
}

// InventoryValuation returns the total cost value of stock on hand
func (s *ReportService) InventoryValuation(ctx context.Context) (decimal.Decimal, error) {
	return s.analyticsRepo.InventoryValuation(ctx)
}

// PeriodReport holds sale and purchase totals for one period
type PeriodReport struct {
	From      time.Time               `json:"from"`
	To        time.Time               `json:"to"`
	Sales     *repository.PeriodStats `json:"sales"`
	Purchases *repository.PeriodStats `json:"purchases"`
}

// TransactionsByPeriod returns sale and purchase totals between two dates
func (s *ReportService) TransactionsByPeriod(ctx context.Context, from, to time.Time) (*PeriodReport, error) {
	if to.Before(from) {
		return nil, apperror.NewValidationError("Period end must not be before period start")
	}

	sales, err := s.analyticsRepo.SaleStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	purchases, err := s.analyticsRepo.PurchaseStats(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &PeriodReport{From: from, To: to, Sales: sales, Purchases: purchases}, nil
}

// LowStockProducts returns products at risk of running out
func (s *ReportService) LowStockProducts(ctx context.Context, threshold int) ([]entity.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return s.productRepo.GetLowStock(ctx, threshold)
}

// Dashboard returns the general counters for the landing page
func (s *ReportService) Dashboard(ctx context.Context, lowStockThreshold int) (*repository.DashboardStats, error) {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return s.analyticsRepo.Dashboard(ctx, lowStockThreshold)
}
