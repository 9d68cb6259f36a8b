package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/pkg/apperror"
)

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active status", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)

		product, err := svc.CreateProduct(ctx, &CreateProductInput{
			Name:      "Flour",
			Stock:     10,
			UnitPrice: dec("3.50"),
			UnitCost:  dec("2.00"),
		})
		require.NoError(t, err)

		assert.Equal(t, enum.ProductStatusActive, product.Status)
		assert.True(t, product.IsActive())
	})

	t.Run("rejects negative stock and prices", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)

		_, err := svc.CreateProduct(ctx, &CreateProductInput{Name: "Flour", Stock: -1})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))

		_, err = svc.CreateProduct(ctx, &CreateProductInput{Name: "Flour", UnitPrice: dec("-1")})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("rejects an unknown category or supplier", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)
		missing := uuid.New()

		_, err := svc.CreateProduct(ctx, &CreateProductInput{Name: "Flour", CategoryID: &missing})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("leaves absent fields untouched", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)
		product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")

		updated, err := svc.UpdateProduct(ctx, product.ID, &UpdateProductInput{
			UnitPrice: decPtr("4.00"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Flour", updated.Name)
		assert.Equal(t, 10, updated.Stock)
		assert.Equal(t, "4.00", updated.UnitPrice.StringFixed(2))
		assert.Equal(t, "2.00", updated.UnitCost.StringFixed(2))
	})

	t.Run("can deactivate a product", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)
		product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")

		status := enum.ProductStatusInactive
		updated, err := svc.UpdateProduct(ctx, product.ID, &UpdateProductInput{Status: &status})
		require.NoError(t, err)
		assert.False(t, updated.IsActive())
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)
		product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")

		status := enum.ProductStatus("archived")
		_, err := svc.UpdateProduct(ctx, product.ID, &UpdateProductInput{Status: &status})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a product without history", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)
		product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")

		require.NoError(t, svc.DeleteProduct(ctx, product.ID))

		_, err := svc.GetProduct(ctx, product.ID)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("is blocked while purchase or sale items reference it", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)
		purchases := newPurchaseService(db)
		product := seedProduct(t, db, "Flour", 0, "3.50", "2.00")

		_, err := purchases.RegisterPurchase(ctx, &RegisterPurchaseInput{
			Items: []PurchaseLineInput{
				{ProductID: product.ID, Quantity: 5, UnitPrice: dec("2.00")},
			},
		})
		require.NoError(t, err)

		err = svc.DeleteProduct(ctx, product.ID)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))

		_, err = svc.GetProduct(ctx, product.ID)
		assert.NoError(t, err)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by search and active status", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)
		seedProduct(t, db, "White Flour", 10, "3.50", "2.00")
		seedProduct(t, db, "Brown Sugar", 8, "2.00", "1.20")
		inactive := seedProduct(t, db, "Flour Mix", 2, "5.00", "4.00")
		require.NoError(t, db.Model(inactive).Update("status", enum.ProductStatusInactive).Error)

		result, err := svc.ListProducts(ctx, &repository.ProductFilterParams{Search: "flour"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Pagination.Total)

		result, err = svc.ListProducts(ctx, &repository.ProductFilterParams{Search: "flour", ActiveOnly: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Pagination.Total)
	})

	t.Run("low stock uses the default threshold", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newProductService(db)
		seedProduct(t, db, "Flour", 4, "3.50", "2.00")
		seedProduct(t, db, "Sugar", 5, "2.00", "1.20")
		seedProduct(t, db, "Rice", 20, "5.00", "3.00")

		result, err := svc.ListProducts(ctx, &repository.ProductFilterParams{LowStock: true})
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Pagination.Total)
		assert.Equal(t, "Flour", result.Items[0].Name)

		low, err := svc.LowStockProducts(ctx, 0)
		require.NoError(t, err)
		require.Len(t, low, 1)
		assert.Equal(t, "Flour", low[0].Name)
	})
}
