package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// ProductFilterParams represents filtering parameters for product listing
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
	LowStock   bool
	Threshold  int
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error)

	// CountMovements returns how many purchase and sale line items
	// reference the product.
	CountMovements(ctx context.Context, id uuid.UUID) (int64, error)
	CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// IncrementStock adds qty to the product's stock.
	IncrementStock(ctx context.Context, id uuid.UUID, qty int) error
	// DecrementStock subtracts qty from the product's stock only if the
	// result stays non-negative. Returns false when the guard rejects the
	// update (stock < qty).
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) (bool, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, withProducts bool) ([]entity.Category, int64, error)
}
