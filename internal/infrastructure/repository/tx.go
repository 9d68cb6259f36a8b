package repository

import (
	"context"

	domainRepo "github.com/inventa-app/inventa-api/internal/domain/repository"
	"gorm.io/gorm"
)

// txManager implements repository.TxManager over a GORM database handle.
// Every unit of work runs inside one database transaction; the repositories
// handed to the callback all share that transaction.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager backed by the given database
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &txManager{db: db}
}

func (m *txManager) Do(ctx context.Context, fn func(r domainRepo.Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

// txRepositories binds every repository to the same open transaction
type txRepositories struct {
	tx *gorm.DB
}

func (r *txRepositories) Products() domainRepo.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r *txRepositories) Categories() domainRepo.CategoryRepository {
	return NewCategoryRepository(r.tx)
}

func (r *txRepositories) Clients() domainRepo.ClientRepository {
	return NewClientRepository(r.tx)
}

func (r *txRepositories) Suppliers() domainRepo.SupplierRepository {
	return NewSupplierRepository(r.tx)
}

func (r *txRepositories) Purchases() domainRepo.PurchaseRepository {
	return NewPurchaseRepository(r.tx)
}

func (r *txRepositories) PurchaseItems() domainRepo.PurchaseItemRepository {
	return NewPurchaseItemRepository(r.tx)
}

func (r *txRepositories) Sales() domainRepo.SaleRepository {
	return NewSaleRepository(r.tx)
}

func (r *txRepositories) SaleItems() domainRepo.SaleItemRepository {
	return NewSaleItemRepository(r.tx)
}
