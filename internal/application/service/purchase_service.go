package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/pkg/apperror"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// PurchaseService handles purchase registration and the stock bookkeeping
// that goes with it. Every mutating operation runs as a single unit of work:
// either the header, the line items and every stock adjustment commit
// together, or none of them do.
type PurchaseService struct {
	txm           repository.TxManager
	purchaseRepo  repository.PurchaseRepository
	supplierRepo  repository.SupplierRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	txm repository.TxManager,
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	analyticsRepo repository.AnalyticsRepository,
) *PurchaseService {
	return &PurchaseService{
		txm:           txm,
		purchaseRepo:  purchaseRepo,
		supplierRepo:  supplierRepo,
		analyticsRepo: analyticsRepo,
	}
}

// PurchaseLineInput represents one line of a purchase
type PurchaseLineInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// RegisterPurchaseInput represents the register purchase input
type RegisterPurchaseInput struct {
	SupplierID *uuid.UUID
	Date       time.Time
	Status     *enum.PurchaseStatus
	Items      []PurchaseLineInput
}

// UpdatePurchaseInput represents the update purchase input. Nil fields are
// left unchanged; a nil Items slice keeps the existing line set, while a
// non-nil one fully replaces it.
type UpdatePurchaseInput struct {
	SupplierID *uuid.UUID
	Date       *time.Time
	Status     *enum.PurchaseStatus
	Items      []PurchaseLineInput
}

// lineSubtotal computes the rounded subtotal of one line. Totals are always
// sums of per-line rounded subtotals, never a rounding of the raw sum.
func lineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

func validatePurchaseLines(items []PurchaseLineInput) error {
	if len(items) == 0 {
		return apperror.NewValidationError("A purchase requires at least one line item")
	}

	var fieldErrors []apperror.FieldError
	for i, item := range items {
		if item.ProductID == uuid.Nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items.%d.product_id", i),
				Message: "product_id is required",
			})
		}
		if item.Quantity < 1 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items.%d.quantity", i),
				Message: "quantity must be at least 1",
			})
		}
		if item.UnitPrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items.%d.unit_price", i),
				Message: "unit_price must not be negative",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewFieldValidationError(fieldErrors)
	}
	return nil
}

// loadProducts fetches every referenced product and fails with a not found
// error when any line points at a product that does not exist.
func loadProducts(ctx context.Context, products repository.ProductRepository, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	found, err := products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Product, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, apperror.NewNotFoundError("Product")
		}
	}
	return byID, nil
}

// applyPurchaseLines creates the line items for a purchase and adds each
// quantity to its product's stock. Must run inside the enclosing unit of work.
func applyPurchaseLines(ctx context.Context, r repository.Repositories, purchaseID uuid.UUID, lines []PurchaseLineInput) ([]entity.PurchaseItem, decimal.Decimal, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	if _, err := loadProducts(ctx, r.Products(), ids); err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	items := make([]entity.PurchaseItem, 0, len(lines))
	for _, line := range lines {
		subtotal := lineSubtotal(line.Quantity, line.UnitPrice)
		total = total.Add(subtotal)
		items = append(items, entity.PurchaseItem{
			PurchaseID: purchaseID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Subtotal:   subtotal,
		})
	}

	if err := r.PurchaseItems().CreateBatch(ctx, items); err != nil {
		return nil, decimal.Zero, err
	}
	for _, line := range lines {
		if err := r.Products().IncrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			return nil, decimal.Zero, err
		}
	}
	return items, total, nil
}

// revertPurchaseLines takes back the stock a purchase added. The decrement is
// guarded so a purchase whose goods were already sold cannot be reverted.
func revertPurchaseLines(ctx context.Context, r repository.Repositories, items []entity.PurchaseItem) error {
	for _, item := range items {
		ok, err := r.Products().DecrementStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			name := item.Product.Name
			if name == "" {
				name = item.ProductID.String()
			}
			return apperror.NewConflictError(fmt.Sprintf("Cannot revert purchase: stock of product %q would become negative", name))
		}
	}
	return nil
}

// RegisterPurchase records a purchase and increments the stock of every
// product on it, all within one transaction.
func (s *PurchaseService) RegisterPurchase(ctx context.Context, input *RegisterPurchaseInput) (*entity.Purchase, error) {
	if err := validatePurchaseLines(input.Items); err != nil {
		return nil, err
	}

	status := enum.PurchaseStatusCompleted
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewValidationError("Invalid purchase status")
		}
		status = *input.Status
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	var purchase *entity.Purchase
	err := s.txm.Do(ctx, func(r repository.Repositories) error {
		if input.SupplierID != nil {
			supplier, err := r.Suppliers().GetByID(ctx, *input.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return apperror.NewNotFoundError("Supplier")
			}
		}

		p := &entity.Purchase{
			SupplierID: input.SupplierID,
			Date:       date,
			Total:      decimal.Zero,
			Status:     status,
		}
		if err := r.Purchases().Create(ctx, p); err != nil {
			return err
		}

		items, total, err := applyPurchaseLines(ctx, r, p.ID, input.Items)
		if err != nil {
			return err
		}
		p.Total = total
		if err := r.Purchases().Update(ctx, p); err != nil {
			return err
		}
		p.Items = items
		purchase = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// UpdatePurchase patches a purchase header and, when a new line set is
// supplied, replaces the old lines after taking their stock back.
func (s *PurchaseService) UpdatePurchase(ctx context.Context, id uuid.UUID, input *UpdatePurchaseInput) (*entity.Purchase, error) {
	if input.Items != nil {
		if err := validatePurchaseLines(input.Items); err != nil {
			return nil, err
		}
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, apperror.NewValidationError("Invalid purchase status")
	}

	var updated *entity.Purchase
	err := s.txm.Do(ctx, func(r repository.Repositories) error {
		p, err := r.Purchases().GetWithItems(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return apperror.NewNotFoundError("Purchase")
		}

		if input.SupplierID != nil {
			supplier, err := r.Suppliers().GetByID(ctx, *input.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return apperror.NewNotFoundError("Supplier")
			}
			p.SupplierID = input.SupplierID
		}
		if input.Date != nil {
			p.Date = *input.Date
		}
		if input.Status != nil {
			p.Status = *input.Status
		}

		if input.Items != nil {
			if err := revertPurchaseLines(ctx, r, p.Items); err != nil {
				return err
			}
			if err := r.PurchaseItems().DeleteByPurchaseID(ctx, p.ID); err != nil {
				return err
			}
			items, total, err := applyPurchaseLines(ctx, r, p.ID, input.Items)
			if err != nil {
				return err
			}
			p.Total = total
			p.Items = items
		}

		if err := r.Purchases().Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePurchase removes a purchase and takes back the stock it added. The
// delete is rejected when any product no longer has enough stock to revert.
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	return s.txm.Do(ctx, func(r repository.Repositories) error {
		p, err := r.Purchases().GetWithItems(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return apperror.NewNotFoundError("Purchase")
		}

		if err := revertPurchaseLines(ctx, r, p.Items); err != nil {
			return err
		}
		if err := r.PurchaseItems().DeleteByPurchaseID(ctx, p.ID); err != nil {
			return err
		}
		return r.Purchases().Delete(ctx, p.ID)
	})
}

// GetPurchase retrieves a purchase with its supplier and line items
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	p, err := s.purchaseRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return p, nil
}

// ListPurchases lists purchases with filters and pagination
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// PurchasesBySupplier returns the most recent purchases from one supplier
func (s *PurchaseService) PurchasesBySupplier(ctx context.Context, supplierID uuid.UUID, limit int) ([]entity.Purchase, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return s.purchaseRepo.ListBySupplier(ctx, supplierID, limit)
}

// TransactionStats summarizes purchase or sale activity
type TransactionStats struct {
	TotalCount  int64           `json:"total_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	MonthCount  int64           `json:"month_count"`
	MonthAmount decimal.Decimal `json:"month_amount"`
}

// PurchaseStats returns all-time and current-month purchase totals
func (s *PurchaseService) PurchaseStats(ctx context.Context) (*TransactionStats, error) {
	now := time.Now()
	allTime, err := s.analyticsRepo.PurchaseStats(ctx, time.Time{}, now)
	if err != nil {
		return nil, err
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	month, err := s.analyticsRepo.PurchaseStats(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}

	return &TransactionStats{
		TotalCount:  allTime.Count,
		TotalAmount: allTime.Amount,
		MonthCount:  month.Count,
		MonthAmount: month.Amount,
	}, nil
}
