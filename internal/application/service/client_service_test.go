package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/pkg/apperror"
)

func TestClientCRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create and partial update", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newClientService(db)

		phone := "555-0101"
		client, err := svc.CreateClient(ctx, &CreateClientInput{Name: "Maria Lopez", Phone: &phone})
		require.NoError(t, err)

		address := "Av. Central 123"
		updated, err := svc.UpdateClient(ctx, client.ID, &UpdateClientInput{Address: &address})
		require.NoError(t, err)

		assert.Equal(t, "Maria Lopez", updated.Name)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, phone, *updated.Phone)
		require.NotNil(t, updated.Address)
		assert.Equal(t, address, *updated.Address)
	})

	t.Run("create requires a name", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newClientService(db)

		_, err := svc.CreateClient(ctx, &CreateClientInput{})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("search matches name and phone", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newClientService(db)

		phone := "555-0199"
		_, err := svc.CreateClient(ctx, &CreateClientInput{Name: "Maria Lopez", Phone: &phone})
		require.NoError(t, err)
		_, err = svc.CreateClient(ctx, &CreateClientInput{Name: "Juan Perez"})
		require.NoError(t, err)

		result, err := svc.ListClients(ctx, &repository.ClientFilterParams{Search: "0199"})
		require.NoError(t, err)
		require.Equal(t, int64(1), result.Pagination.Total)
		assert.Equal(t, "Maria Lopez", result.Items[0].Name)
	})
}

func TestDeleteClient(t *testing.T) {
	ctx := context.Background()

	t.Run("is blocked while sales reference the client", func(t *testing.T) {
		db := setupTestDB(t)
		clients := newClientService(db)
		sales := newSaleService(db)
		product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
		client := seedClient(t, db, "Maria Lopez")

		sale, err := sales.RegisterSale(ctx, &RegisterSaleInput{
			ClientID: &client.ID,
			Items: []SaleLineInput{
				{ProductID: product.ID, Quantity: 2},
			},
		})
		require.NoError(t, err)

		err = clients.DeleteClient(ctx, client.ID)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))

		// Once the sale is gone the client can be removed.
		require.NoError(t, sales.DeleteSale(ctx, sale.ID))
		require.NoError(t, clients.DeleteClient(ctx, client.ID))

		_, err = clients.GetClient(ctx, client.ID)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestClientStats(t *testing.T) {
	ctx := context.Background()

	db := setupTestDB(t)
	clients := newClientService(db)
	sales := newSaleService(db)
	product := seedProduct(t, db, "Flour", 10, "3.50", "2.00")
	buyer := seedClient(t, db, "Maria Lopez")
	seedClient(t, db, "Juan Perez")

	_, err := sales.RegisterSale(ctx, &RegisterSaleInput{
		ClientID: &buyer.ID,
		Items: []SaleLineInput{
			{ProductID: product.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	stats, err := clients.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.WithTransactions)

	top, err := clients.TopClients(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, buyer.ID, top[0].PartyID)
	assert.Equal(t, int64(1), top[0].TransactionCount)
}
