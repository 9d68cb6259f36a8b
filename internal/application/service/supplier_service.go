package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/pkg/apperror"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// SupplierService handles supplier directory operations
type SupplierService struct {
	supplierRepo  repository.SupplierRepository
	productRepo   repository.ProductRepository
	purchaseRepo  repository.PurchaseRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	analyticsRepo repository.AnalyticsRepository,
) *SupplierService {
	return &SupplierService{
		supplierRepo:  supplierRepo,
		productRepo:   productRepo,
		purchaseRepo:  purchaseRepo,
		analyticsRepo: analyticsRepo,
	}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name    string
	Phone   *string
	Address *string
}

// UpdateSupplierInput represents the update supplier input. Nil fields are
// left unchanged.
type UpdateSupplierInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Supplier name is required")
	}

	supplier := &entity.Supplier{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers with filters and pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *repository.SupplierFilterParams) (*pagination.PaginatedResult[entity.Supplier], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	suppliers, total, err := s.supplierRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}

// UpdateSupplier updates a supplier. Only non-nil fields are changed.
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError("Supplier name is required")
		}
		supplier.Name = *input.Name
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier deletes a supplier. Suppliers still referenced by products
// or purchases cannot be deleted.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	products, err := s.productRepo.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return apperror.NewConflictError("Cannot delete a supplier that still has products")
	}

	purchases, err := s.purchaseRepo.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if purchases > 0 {
		return apperror.NewConflictError("Cannot delete a supplier with registered purchases")
	}

	return s.supplierRepo.Delete(ctx, id)
}

// TopSuppliers returns the suppliers ranked by total purchase amount
func (s *SupplierService) TopSuppliers(ctx context.Context, limit int) ([]repository.PartyTotalResult, error) {
	return s.analyticsRepo.TopSuppliers(ctx, limit)
}

// Stats returns supplier counters
func (s *SupplierService) Stats(ctx context.Context) (*PartyStats, error) {
	one := &pagination.PaginationParams{Page: 1, PerPage: 1}

	_, total, err := s.supplierRepo.List(ctx, &repository.SupplierFilterParams{Pagination: one})
	if err != nil {
		return nil, err
	}
	_, withPurchases, err := s.supplierRepo.List(ctx, &repository.SupplierFilterParams{
		Pagination:    &pagination.PaginationParams{Page: 1, PerPage: 1},
		WithPurchases: true,
	})
	if err != nil {
		return nil, err
	}

	return &PartyStats{Total: total, WithTransactions: withPurchases}, nil
}
