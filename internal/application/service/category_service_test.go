package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventa-app/inventa-api/pkg/apperror"
)

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("is blocked while products reference the category", func(t *testing.T) {
		db := setupTestDB(t)
		categories := newCategoryService(db)
		products := newProductService(db)
		category := seedCategory(t, db, "Abarrotes")

		created, err := products.CreateProduct(ctx, &CreateProductInput{
			Name:       "Flour",
			UnitPrice:  dec("3.50"),
			UnitCost:   dec("2.00"),
			CategoryID: &category.ID,
		})
		require.NoError(t, err)

		err = categories.DeleteCategory(ctx, category.ID)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))

		require.NoError(t, products.DeleteProduct(ctx, created.ID))
		require.NoError(t, categories.DeleteCategory(ctx, category.ID))
	})
}

func TestCategoryStats(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	categories := newCategoryService(db)
	stocked := seedCategory(t, db, "Abarrotes")
	seedCategory(t, db, "Limpieza")

	product := seedProduct(t, db, "Flour", 12, "3.50", "2.00")
	require.NoError(t, db.Model(product).Update("category_id", stocked.ID).Error)

	stats, err := categories.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.WithProducts)
	assert.Equal(t, int64(1), stats.WithoutProducts)

	require.NotEmpty(t, stats.MostStocked)
	assert.Equal(t, stocked.ID, stats.MostStocked[0].CategoryID)
	assert.Equal(t, int64(12), stats.MostStocked[0].TotalStock)
}
