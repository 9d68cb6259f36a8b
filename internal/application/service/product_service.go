package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/pkg/apperror"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// DefaultLowStockThreshold is used when a caller does not supply one
const DefaultLowStockThreshold = 5

// ProductService handles product catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name       string
	Stock      int
	UnitPrice  decimal.Decimal
	UnitCost   decimal.Decimal
	ExpiresAt  *time.Time
	SupplierID *uuid.UUID
	CategoryID *uuid.UUID
	Status     *enum.ProductStatus
}

// UpdateProductInput represents the update product input. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	Name       *string
	Stock      *int
	UnitPrice  *decimal.Decimal
	UnitCost   *decimal.Decimal
	ExpiresAt  *time.Time
	SupplierID *uuid.UUID
	CategoryID *uuid.UUID
	Status     *enum.ProductStatus
}

func (s *ProductService) checkReferences(ctx context.Context, supplierID, categoryID *uuid.UUID) error {
	if supplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *supplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return apperror.NewNotFoundError("Supplier")
		}
	}
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return apperror.NewNotFoundError("Category")
		}
	}
	return nil
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Product name is required")
	}
	if input.Stock < 0 {
		return nil, apperror.NewValidationError("Stock must not be negative")
	}
	if input.UnitPrice.IsNegative() || input.UnitCost.IsNegative() {
		return nil, apperror.NewValidationError("Prices must not be negative")
	}

	status := enum.ProductStatusActive
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewValidationError("Invalid product status")
		}
		status = *input.Status
	}

	if err := s.checkReferences(ctx, input.SupplierID, input.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       input.Name,
		Stock:      input.Stock,
		UnitPrice:  input.UnitPrice,
		UnitCost:   input.UnitCost,
		ExpiresAt:  input.ExpiresAt,
		SupplierID: input.SupplierID,
		CategoryID: input.CategoryID,
		Status:     status,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filters and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	if params.LowStock && params.Threshold <= 0 {
		params.Threshold = DefaultLowStockThreshold
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// LowStockProducts returns products at or below the threshold
func (s *ProductService) LowStockProducts(ctx context.Context, threshold int) ([]entity.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return s.productRepo.GetLowStock(ctx, threshold)
}

// UpdateProduct updates a product. Only non-nil fields are changed.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError("Product name is required")
		}
		product.Name = *input.Name
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewValidationError("Stock must not be negative")
		}
		product.Stock = *input.Stock
	}
	if input.UnitPrice != nil {
		if input.UnitPrice.IsNegative() {
			return nil, apperror.NewValidationError("Prices must not be negative")
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.UnitCost != nil {
		if input.UnitCost.IsNegative() {
			return nil, apperror.NewValidationError("Prices must not be negative")
		}
		product.UnitCost = *input.UnitCost
	}
	if input.ExpiresAt != nil {
		product.ExpiresAt = input.ExpiresAt
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewValidationError("Invalid product status")
		}
		product.Status = *input.Status
	}
	if err := s.checkReferences(ctx, input.SupplierID, input.CategoryID); err != nil {
		return nil, err
	}
	if input.SupplierID != nil {
		product.SupplierID = input.SupplierID
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product. Products referenced by purchase or sale
// line items cannot be deleted; they should be marked inactive instead.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	movements, err := s.productRepo.CountMovements(ctx, id)
	if err != nil {
		return err
	}
	if movements > 0 {
		return apperror.NewConflictError("Cannot delete a product with purchase or sale history")
	}

	return s.productRepo.Delete(ctx, id)
}
