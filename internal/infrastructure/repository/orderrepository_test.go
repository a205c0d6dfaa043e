package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rannaghore/internal/domain/order"
	vo "rannaghore/internal/domain/order/valueobjects"
	"rannaghore/internal/shared/errors"
)

func placedOrder(t *testing.T, number string, userID uint) *order.Order {
	t.Helper()

	o, err := order.NewOrder(number, userID, 10, 1, 950, 60, order.ShippingDetails{
		FirstName: "Rahim",
		LastName:  "Uddin",
		Email:     "rahim@example.com",
		Phone:     "+8801711111111",
		Address:   "House 12, Road 5",
		City:      "Dhaka",
	}, vo.PaymentCashOnDelivery)
	require.NoError(t, err)
	return o
}

func TestOrderRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := placedOrder(t, "RP-0001", 1)
	require.NoError(t, repo.Save(ctx, o))
	assert.NotZero(t, o.ID())

	t.Run("duplicate number fails", func(t *testing.T) {
		dup := placedOrder(t, "RP-0001", 2)
		assert.Error(t, repo.Save(ctx, dup))
	})
}

func TestOrderRepository_GetByIDForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := placedOrder(t, "RP-0002", 1)
	require.NoError(t, repo.Save(ctx, o))

	t.Run("owner sees the order", func(t *testing.T) {
		found, err := repo.GetByIDForUser(ctx, o.ID(), 1)
		require.NoError(t, err)
		assert.Equal(t, "RP-0002", found.Number())
		assert.Equal(t, int64(1010), found.Total())
		assert.Equal(t, "Rahim Uddin", found.Shipping().CustomerName())
		assert.Equal(t, vo.PaymentCashOnDelivery, found.PaymentMethod())
	})

	t.Run("other users get not found", func(t *testing.T) {
		_, err := repo.GetByIDForUser(ctx, o.ID(), 2)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestOrderNumberAllocator_Next(t *testing.T) {
	db := setupTestDB(t)
	allocator := NewOrderNumberAllocator(db)
	ctx := context.Background()

	first, err := allocator.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RP-0001", first)

	second, err := allocator.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RP-0002", second)

	third, err := allocator.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RP-0003", third)
}
