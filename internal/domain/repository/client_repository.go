package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// ClientFilterParams represents filtering parameters for client listing
type ClientFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	WithSales  bool
}

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ClientFilterParams) ([]entity.Client, int64, error)
}

// SupplierFilterParams represents filtering parameters for supplier listing
type SupplierFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	WithProducts  bool
	WithPurchases bool
}

// SupplierRepository defines the interface for supplier data access
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SupplierFilterParams) ([]entity.Supplier, int64, error)
}
