package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// PurchaseFilterParams represents filtering parameters for purchase listing
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.PurchaseStatus
	From       *time.Time
	To         *time.Time
	SupplierID *uuid.UUID
}

// PurchaseRepository defines the interface for purchase header data access
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID, limit int) ([]entity.Purchase, error)
	CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)
}

// PurchaseItemRepository defines the interface for purchase line item data access
type PurchaseItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.PurchaseItem) error
	DeleteByPurchaseID(ctx context.Context, purchaseID uuid.UUID) error
	CountByProductID(ctx context.Context, productID uuid.UUID) (int64, error)
}
