package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/pkg/apperror"
)

func TestRegisterPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("increments stock and derives the total", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)
		flour := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
		sugar := seedProduct(t, db, "Sugar", 0, "2.00", "1.20")

		purchase, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Items: []PurchaseLineInput{
				{ProductID: flour.ID, Quantity: 5, UnitPrice: dec("2.00")},
				{ProductID: sugar.ID, Quantity: 3, UnitPrice: dec("1.25")},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, enum.PurchaseStatusCompleted, purchase.Status)
		assert.Equal(t, "13.75", purchase.Total.StringFixed(2))
		assert.Len(t, purchase.Items, 2)
		assert.Equal(t, 15, currentStock(t, db, flour.ID))
		assert.Equal(t, 3, currentStock(t, db, sugar.ID))
	})

	t.Run("total is the sum of per-line rounded subtotals", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)
		product := seedProduct(t, db, "Rice", 0, "5.00", "3.00")

		// 3 x 0.335 = 1.005 rounds to 1.01 per line, so the total is
		// 2.02 rather than round(2.01) of the raw sum.
		purchase, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 3, UnitPrice: dec("0.335")},
				{ProductID: product.ID, Quantity: 3, UnitPrice: dec("0.335")},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "2.02", purchase.Total.StringFixed(2))
		assert.Equal(t, "1.01", purchase.Items[0].Subtotal.StringFixed(2))
		assert.Equal(t, 6, currentStock(t, db, product.ID))
	})

	t.Run("rejects an empty line set", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)

		_, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("rejects non-positive quantities and negative prices", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)
		product := seedProduct(t, db, "Salt", 4, "1.00", "0.50")

		_, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 0, UnitPrice: dec("1.00")},
				{ProductID: product.ID, Quantity: 2, UnitPrice: dec("-0.10")},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		assert.Equal(t, 4, currentStock(t, db, product.ID))
	})

	t.Run("commits nothing when one product is unknown", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)
		flour := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
		sugar := seedProduct(t, db, "Sugar", 5, "2.00", "1.20")

		_, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: flour.ID, Quantity: 5, UnitPrice: dec("2.00")},
				{ProductID: sugar.ID, Quantity: 3, UnitPrice: dec("1.25")},
				{ProductID: uuid.New(), Quantity: 1, UnitPrice: dec("9.99")},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

		assert.Equal(t, 10, currentStock(t, db, flour.ID))
		assert.Equal(t, 5, currentStock(t, db, sugar.ID))

		var purchases int64
		require.NoError(t, db.Model(&entity.Purchase{}).Count(&purchases).Error)
		assert.Zero(t, purchases)
		var items int64
		require.NoError(t, db.Model(&entity.PurchaseItem{}).Count(&items).Error)
		assert.Zero(t, items)
	})

	t.Run("rejects an unknown supplier", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)
		product := seedProduct(t, db, "Oil", 2, "8.00", "6.00")
		missing := uuid.New()

		_, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
			SupplierID: &missing,
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 1, UnitPrice: dec("6.00")},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		assert.Equal(t, 2, currentStock(t, db, product.ID))
	})
}

func TestUpdatePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the line set and adjusts stock", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)
		flour := seedProduct(t, db, "Flour", 0, "3.50", "2.00")
		sugar := seedProduct(t, db, "Sugar", 0, "2.00", "1.20")

		purchase, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: flour.ID, Quantity: 10, UnitPrice: dec("2.00")},
			},
		})
		require.NoError(t, err)

		updated, err := svc.UpdatePurchase(ctx, purchase.ID, &UpdatePurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: sugar.ID, Quantity: 4, UnitPrice: dec("1.50")},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "6.00", updated.Total.StringFixed(2))
		assert.Equal(t, 0, currentStock(t, db, flour.ID))
		assert.Equal(t, 4, currentStock(t, db, sugar.ID))

		var items int64
		require.NoError(t, db.Model(&entity.PurchaseItem{}).
			Where("purchase_id = ?", purchase.ID).Count(&items).Error)
		assert.Equal(t, int64(1), items)
	})

	t.Run("patches the header without touching stock when items are absent", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)
		product := seedProduct(t, db, "Rice", 0, "5.00", "3.00")
		supplier := seedSupplier(t, db, "Molinos SA")

		purchase, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 6, UnitPrice: dec("3.00")},
			},
		})
		require.NoError(t, err)

		status := enum.PurchaseStatusPending
		updated, err := svc.UpdatePurchase(ctx, purchase.ID, &UpdatePurchaseInput{
			SupplierID: &supplier.ID,
			Status:     &status,
		})
		require.NoError(t, err)

		assert.Equal(t, enum.PurchaseStatusPending, updated.Status)
		require.NotNil(t, updated.SupplierID)
		assert.Equal(t, supplier.ID, *updated.SupplierID)
		assert.Equal(t, "18.00", updated.Total.StringFixed(2))
		assert.Equal(t, 6, currentStock(t, db, product.ID))
	})

	t.Run("aborts entirely when reverting would overdraw stock", func(t *testing.T) {
		db := setupTestDB(t)
		purchases := newPurchaseService(db)
		sales := newSaleService(db)
		product := seedProduct(t, db, "Flour", 0, "3.50", "2.00")

		purchase, err := purchases.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 10, UnitPrice: dec("2.00")},
			},
		})
		require.NoError(t, err)

		// Most of the purchased stock is already sold.
		_, err = sales.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 8},
			},
		})
		require.NoError(t, err)

		_, err = purchases.UpdatePurchase(ctx, purchase.ID, &UpdatePurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 1, UnitPrice: dec("2.00")},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))

		// Nothing moved: the old line set and stock are intact.
		assert.Equal(t, 2, currentStock(t, db, product.ID))
		kept, err := purchases.GetPurchase(ctx, purchase.ID)
		require.NoError(t, err)
		require.Len(t, kept.Items, 1)
		assert.Equal(t, 10, kept.Items[0].Quantity)
	})

	t.Run("returns not found for an unknown purchase", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)

		_, err := svc.UpdatePurchase(ctx, uuid.New(), &UpdatePurchaseInput{})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestDeletePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("reverts the stock it added", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newPurchaseService(db)
		product := seedProduct(t, db, "Flour", 3, "3.50", "2.00")

		purchase, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 7, UnitPrice: dec("2.00")},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 10, currentStock(t, db, product.ID))

		require.NoError(t, svc.DeletePurchase(ctx, purchase.ID))
		assert.Equal(t, 3, currentStock(t, db, product.ID))

		_, err = svc.GetPurchase(ctx, purchase.ID)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("is rejected when the goods were already sold", func(t *testing.T) {
		db := setupTestDB(t)
		purchases := newPurchaseService(db)
		sales := newSaleService(db)
		product := seedProduct(t, db, "Flour", 0, "3.50", "2.00")

		purchase, err := purchases.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 10, UnitPrice: dec("2.00")},
			},
		})
		require.NoError(t, err)

		_, err = sales.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 8},
			},
		})
		require.NoError(t, err)

		err = purchases.DeletePurchase(ctx, purchase.ID)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))

		// The purchase and its stock effect both survive.
		assert.Equal(t, 2, currentStock(t, db, product.ID))
		_, err = purchases.GetPurchase(ctx, purchase.ID)
		assert.NoError(t, err)
	})
}

func TestPurchaseStats(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	svc := newPurchaseService(db)
	product := seedProduct(t, db, "Flour", 0, "3.50", "2.00")

	_, err := svc.RegisterPurchase(ctx, &RegisterPurchaseInput{
		Date: time.Now(),
		Items: []PurchaseLineInput{
			{ProductID: product.ID, Quantity: 2, UnitPrice: dec("2.50")},
		},
	})
	require.NoError(t, err)

	stats, err := svc.PurchaseStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalCount)
	assert.Equal(t, int64(1), stats.MonthCount)
	assert.Equal(t, "5.00", stats.MonthAmount.StringFixed(2))
}
