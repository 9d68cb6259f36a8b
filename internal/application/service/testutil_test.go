package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	infra "github.com/inventa-app/inventa-api/internal/infrastructure/repository"
)

// setupTestDB opens an in-memory SQLite database and migrates the full
// schema, so the services run against the real repositories and transaction
// manager.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across
	// transactions.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Supplier{},
		&entity.Client{},
		&entity.Product{},
		&entity.Purchase{},
		&entity.PurchaseItem{},
		&entity.Sale{},
		&entity.SaleItem{},
	))

	return db
}

func newPurchaseService(db *gorm.DB) *PurchaseService {
	return NewPurchaseService(
		infra.NewTxManager(db),
		infra.NewPurchaseRepository(db),
		infra.NewSupplierRepository(db),
		infra.NewAnalyticsRepository(db),
	)
}

func newSaleService(db *gorm.DB) *SaleService {
	return NewSaleService(
		infra.NewTxManager(db),
		infra.NewSaleRepository(db),
		infra.NewClientRepository(db),
		infra.NewAnalyticsRepository(db),
	)
}

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(
		infra.NewProductRepository(db),
		infra.NewCategoryRepository(db),
		infra.NewSupplierRepository(db),
	)
}

func newCategoryService(db *gorm.DB) *CategoryService {
	return NewCategoryService(
		infra.NewCategoryRepository(db),
		infra.NewProductRepository(db),
		infra.NewAnalyticsRepository(db),
	)
}

func newClientService(db *gorm.DB) *ClientService {
	return NewClientService(
		infra.NewClientRepository(db),
		infra.NewSaleRepository(db),
		infra.NewAnalyticsRepository(db),
	)
}

func newSupplierService(db *gorm.DB) *SupplierService {
	return NewSupplierService(
		infra.NewSupplierRepository(db),
		infra.NewProductRepository(db),
		infra.NewPurchaseRepository(db),
		infra.NewAnalyticsRepository(db),
	)
}

func seedProduct(t *testing.T, db *gorm.DB, name string, stock int, price, cost string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:      name,
		Stock:     stock,
		UnitPrice: dec(price),
		UnitCost:  dec(cost),
		Status:    enum.ProductStatusActive,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *entity.Supplier {
	t.Helper()

	supplier := &entity.Supplier{Name: name}
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

func seedClient(t *testing.T, db *gorm.DB, name string) *entity.Client {
	t.Helper()

	client := &entity.Client{Name: name}
	require.NoError(t, db.Create(client).Error)
	return client
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

// currentStock re-reads a product's stock straight from the database
func currentStock(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()

	var product entity.Product
	require.NoError(t, db.First(&product, "id = ?", id).Error)
	return product.Stock
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}
