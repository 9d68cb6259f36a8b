package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/pkg/apperror"
)

func TestRegisterSale(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements stock and derives the total", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		flour := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
		sugar := seedProduct(t, db, "Sugar", 8, "2.00", "1.20")

		sale, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: flour.ID, Quantity: 4, UnitPrice: decPtr("3.00")},
				{ProductID: sugar.ID, Quantity: 2},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, enum.SaleStatusCompleted, sale.Status)
		assert.Equal(t, "16.00", sale.Total.StringFixed(2))
		assert.Equal(t, 6, currentStock(t, db, flour.ID))
		assert.Equal(t, 6, currentStock(t, db, sugar.ID))
	})

	t.Run("a missing line price defaults to the product price", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		product := seedProduct(t, db, "Rice", 5, "4.25", "3.00")

		sale, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 2},
			},
		})
		require.NoError(t, err)

		require.Len(t, sale.Items, 1)
		assert.Equal(t, "4.25", sale.Items[0].UnitPrice.StringFixed(2))
		assert.Equal(t, "8.50", sale.Total.StringFixed(2))
	})

	t.Run("rejects the whole sale when one line lacks stock", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		flour := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
		sugar := seedProduct(t, db, "Sugar", 1, "2.00", "1.20")

		_, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: flour.ID, Quantity: 4},
				{ProductID: sugar.ID, Quantity: 2},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))
		assert.Contains(t, err.Error(), "Sugar")

		// Nothing moved, not even the line that would have fit.
		assert.Equal(t, 10, currentStock(t, db, flour.ID))
		assert.Equal(t, 1, currentStock(t, db, sugar.ID))

		var sales int64
		require.NoError(t, db.Model(&entity.Sale{}).Count(&sales).Error)
		assert.Zero(t, sales)
	})

	t.Run("checks stock against the summed demand per product", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		product := seedProduct(t, db, "Flour", 5, "3.50", "2.00")

		// Each line fits on its own but together they overdraw.
		_, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 3},
				{ProductID: product.ID, Quantity: 3},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))
		assert.Equal(t, 5, currentStock(t, db, product.ID))
	})

	t.Run("selling the exact remaining stock drains it to zero", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		product := seedProduct(t, db, "Flour", 5, "3.50", "2.00")

		_, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 5},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, currentStock(t, db, product.ID))
	})

	t.Run("rejects an unknown client", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		product := seedProduct(t, db, "Flour", 5, "3.50", "2.00")
		missing := uuid.New()

		_, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			ClientID: &missing,
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 1},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		assert.Equal(t, 5, currentStock(t, db, product.ID))
	})
}

func TestUpdateSale(t *testing.T) {
	ctx := context.Background()

	t.Run("is equivalent to delete plus register for stock", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		flour := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
		sugar := seedProduct(t, db, "Sugar", 10, "2.00", "1.20")

		sale, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: flour.ID, Quantity: 4},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 6, currentStock(t, db, flour.ID))

		updated, err := svc.UpdateSale(ctx, sale.ID, &UpdateSaleInput{
			Items: []SaleLineInput{
				{ProductID: flour.ID, Quantity: 1},
				{ProductID: sugar.ID, Quantity: 5},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 9, currentStock(t, db, flour.ID))
		assert.Equal(t, 5, currentStock(t, db, sugar.ID))
		assert.Equal(t, "13.50", updated.Total.StringFixed(2))
	})

	t.Run("can grow a line beyond the old stock level", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")

		sale, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 8},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 2, currentStock(t, db, product.ID))

		// The old quantity is restored first, so 10 units are available
		// to the new line set even though only 2 are on the shelf now.
		_, err = svc.UpdateSale(ctx, sale.ID, &UpdateSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 10},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, currentStock(t, db, product.ID))
	})

	t.Run("rolls back the restore when the new set does not fit", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")

		sale, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 8},
			},
		})
		require.NoError(t, err)

		_, err = svc.UpdateSale(ctx, sale.ID, &UpdateSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 11},
			},
		})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

		// The original sale and stock level are untouched.
		assert.Equal(t, 2, currentStock(t, db, product.ID))
		kept, err := svc.GetSale(ctx, sale.ID)
		require.NoError(t, err)
		require.Len(t, kept.Items, 1)
		assert.Equal(t, 8, kept.Items[0].Quantity)
	})

	t.Run("patches the header without touching stock when items are absent", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
		client := seedClient(t, db, "Maria Lopez")

		sale, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 3},
			},
		})
		require.NoError(t, err)

		status := enum.SaleStatusPending
		updated, err := svc.UpdateSale(ctx, sale.ID, &UpdateSaleInput{
			ClientID: &client.ID,
			Status:   &status,
		})
		require.NoError(t, err)

		assert.Equal(t, enum.SaleStatusPending, updated.Status)
		require.NotNil(t, updated.ClientID)
		assert.Equal(t, client.ID, *updated.ClientID)
		assert.Equal(t, "10.50", updated.Total.StringFixed(2))
		assert.Equal(t, 7, currentStock(t, db, product.ID))
	})
}

func TestDeleteSale(t *testing.T) {
	ctx := context.Background()

	t.Run("restores every product's stock exactly", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)
		flour := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
		sugar := seedProduct(t, db, "Sugar", 8, "2.00", "1.20")

		sale, err := svc.RegisterSale(ctx, &RegisterSaleInput{
			Items: []SaleLineInput{
				{ProductID: flour.ID, Quantity: 4},
				{ProductID: sugar.ID, Quantity: 3},
			},
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteSale(ctx, sale.ID))

		assert.Equal(t, 10, currentStock(t, db, flour.ID))
		assert.Equal(t, 8, currentStock(t, db, sugar.ID))

		_, err = svc.GetSale(ctx, sale.ID)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

		var items int64
		require.NoError(t, db.Model(&entity.SaleItem{}).Count(&items).Error)
		assert.Zero(t, items)
	})

	t.Run("returns not found for an unknown sale", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newSaleService(db)

		err := svc.DeleteSale(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
