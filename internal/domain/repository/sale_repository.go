package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// SaleFilterParams represents filtering parameters for sale listing
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.SaleStatus
	From       *time.Time
	To         *time.Time
	ClientID   *uuid.UUID
	WithClient bool
}

// SaleRepository defines the interface for sale header data access
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.Sale, error)
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}

// SaleItemRepository defines the interface for sale line item data access
type SaleItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.SaleItem) error
	DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error
	CountByProductID(ctx context.Context, productID uuid.UUID) (int64, error)
}
