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

// SaleService handles sale registration. A sale never commits if any of its
// lines would drive a product's stock below zero: all lines are validated
// against current stock before the first write, and every decrement is
// guarded again at UPDATE time.
type SaleService struct {
	txm           repository.TxManager
	saleRepo      repository.SaleRepository
	clientRepo    repository.ClientRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	txm repository.TxManager,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	analyticsRepo repository.AnalyticsRepository,
) *SaleService {
	return &SaleService{
		txm:           txm,
		saleRepo:      saleRepo,
		clientRepo:    clientRepo,
		analyticsRepo: analyticsRepo,
	}
}

// SaleLineInput represents one line of a sale. UnitPrice is optional; when
// nil the product's current unit price is charged.
type SaleLineInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice *decimal.Decimal
}

// RegisterSaleInput represents the register sale input
type RegisterSaleInput struct {
	ClientID *uuid.UUID
	Date     time.Time
	Status   *enum.SaleStatus
	Items    []SaleLineInput
}

// UpdateSaleInput represents the update sale input. Nil fields are left
// unchanged; a nil Items slice keeps the existing line set.
type UpdateSaleInput struct {
	ClientID *uuid.UUID
	Date     *time.Time
	Status   *enum.SaleStatus
	Items    []SaleLineInput
}

func validateSaleLines(items []SaleLineInput) error {
	if len(items) == 0 {
		return apperror.NewValidationError("A sale requires at least one line item")
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
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
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

// applySaleLines runs both passes for one line set. Pass one loads every
// product, resolves missing prices and checks that aggregate demand per
// product fits the current stock; nothing is written until the whole set is
// known to fit. Pass two creates the items and performs the guarded
// decrements.
func applySaleLines(ctx context.Context, r repository.Repositories, saleID uuid.UUID, lines []SaleLineInput) ([]entity.SaleItem, decimal.Decimal, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := loadProducts(ctx, r.Products(), ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	// Pass 1: the same product may appear on several lines, so the stock
	// check runs against the summed demand.
	demand := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		demand[line.ProductID] += line.Quantity
	}
	for id, qty := range demand {
		if products[id].Stock < qty {
			return nil, decimal.Zero, apperror.NewInsufficientStockError(products[id].Name)
		}
	}

	total := decimal.Zero
	items := make([]entity.SaleItem, 0, len(lines))
	for _, line := range lines {
		price := products[line.ProductID].UnitPrice
		if line.UnitPrice != nil {
			price = *line.UnitPrice
		}
		subtotal := lineSubtotal(line.Quantity, price)
		total = total.Add(subtotal)
		items = append(items, entity.SaleItem{
			SaleID:    saleID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: price,
			Subtotal:  subtotal,
		})
	}

	// Pass 2: write items, then decrement stock. The guard is a backstop
	// against concurrent writers that changed stock since pass one.
	if err := r.SaleItems().CreateBatch(ctx, items); err != nil {
		return nil, decimal.Zero, err
	}
	for _, line := range lines {
		ok, err := r.Products().DecrementStock(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if !ok {
			return nil, decimal.Zero, apperror.NewInsufficientStockError(products[line.ProductID].Name)
		}
	}
	return items, total, nil
}

// restoreSaleLines puts the stock a sale consumed back on the shelf
func restoreSaleLines(ctx context.Context, r repository.Repositories, items []entity.SaleItem) error {
	for _, item := range items {
		if err := r.Products().IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// RegisterSale records a sale and decrements the stock of every product on
// it, all within one transaction.
func (s *SaleService) RegisterSale(ctx context.Context, input *RegisterSaleInput) (*entity.Sale, error) {
	if err := validateSaleLines(input.Items); err != nil {
		return nil, err
	}

	status := enum.SaleStatusCompleted
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewValidationError("Invalid sale status")
		}
		status = *input.Status
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	var sale *entity.Sale
	err := s.txm.Do(ctx, func(r repository.Repositories) error {
		if input.ClientID != nil {
			client, err := r.Clients().GetByID(ctx, *input.ClientID)
			if err != nil {
				return err
			}
			if client == nil {
				return apperror.NewNotFoundError("Client")
			}
		}

		sl := &entity.Sale{
			ClientID: input.ClientID,
			Date:     date,
			Total:    decimal.Zero,
			Status:   status,
		}
		if err := r.Sales().Create(ctx, sl); err != nil {
			return err
		}

		items, total, err := applySaleLines(ctx, r, sl.ID, input.Items)
		if err != nil {
			return err
		}
		sl.Total = total
		if err := r.Sales().Update(ctx, sl); err != nil {
			return err
		}
		sl.Items = items
		sale = sl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateSale patches a sale header and, when a new line set is supplied,
// restores the old lines' stock before applying the new set.
func (s *SaleService) UpdateSale(ctx context.Context, id uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error) {
	if input.Items != nil {
		if err := validateSaleLines(input.Items); err != nil {
			return nil, err
		}
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, apperror.NewValidationError("Invalid sale status")
	}

	var updated *entity.Sale
	err := s.txm.Do(ctx, func(r repository.Repositories) error {
		sl, err := r.Sales().GetWithItems(ctx, id)
		if err != nil {
			return err
		}
		if sl == nil {
			return apperror.NewNotFoundError("Sale")
		}

		if input.ClientID != nil {
			client, err := r.Clients().GetByID(ctx, *input.ClientID)
			if err != nil {
				return err
			}
			if client == nil {
				return apperror.NewNotFoundError("Client")
			}
			sl.ClientID = input.ClientID
		}
		if input.Date != nil {
			sl.Date = *input.Date
		}
		if input.Status != nil {
			sl.Status = *input.Status
		}

		if input.Items != nil {
			if err := restoreSaleLines(ctx, r, sl.Items); err != nil {
				return err
			}
			if err := r.SaleItems().DeleteBySaleID(ctx, sl.ID); err != nil {
				return err
			}
			items, total, err := applySaleLines(ctx, r, sl.ID, input.Items)
			if err != nil {
				return err
			}
			sl.Total = total
			sl.Items = items
		}

		if err := r.Sales().Update(ctx, sl); err != nil {
			return err
		}
		updated = sl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSale removes a sale and restores the stock it consumed
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	return s.txm.Do(ctx, func(r repository.Repositories) error {
		sl, err := r.Sales().GetWithItems(ctx, id)
		if err != nil {
			return err
		}
		if sl == nil {
			return apperror.NewNotFoundError("Sale")
		}

		if err := restoreSaleLines(ctx, r, sl.Items); err != nil {
			return err
		}
		if err := r.SaleItems().DeleteBySaleID(ctx, sl.ID); err != nil {
			return err
		}
		return r.Sales().Delete(ctx, sl.ID)
	})
}

// GetSale retrieves a sale with its client and line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sl, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sl == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sl, nil
}

// ListSales lists sales with filters and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// SalesByClient returns the most recent sales to one client
func (s *SaleService) SalesByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.Sale, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return s.saleRepo.ListByClient(ctx, clientID, limit)
}

// SaleStats returns all-time and current-month sale totals
func (s *SaleService) SaleStats(ctx context.Context) (*TransactionStats, error) {
	now := time.Now()
	allTime, err := s.analyticsRepo.SaleStats(ctx, time.Time{}, now)
	if err != nil {
		return nil, err
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	month, err := s.analyticsRepo.SaleStats(ctx, monthStart, now)
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
