package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rannaghore/internal/domain/cart"
	"rannaghore/internal/domain/product"
)

func activeProduct(t *testing.T, id uint, name string, price int64) *product.Product {
	t.Helper()
	p, err := product.ReconstructProduct(id, name, "Rannaghore", "Spices", "", price, true, time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func cartItem(t *testing.T, id, userID, productID uint, quantity int) *cart.CartItem {
	t.Helper()
	item, err := cart.ReconstructCartItem(id, userID, productID, quantity, time.Now(), time.Now())
	require.NoError(t, err)
	return item
}

func TestAddToCartUseCase_Execute_NewItem(t *testing.T) {
	var saved *cart.CartItem
	cartRepo := &mockCartItemRepository{
		GetByUserAndProductFunc: func(ctx context.Context, userID, productID uint) (*cart.CartItem, error) {
			return nil, errors.New("record not found")
		},
		SaveFunc: func(ctx context.Context, item *cart.CartItem) error {
			saved = item
			return item.SetID(11)
		},
	}
	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
			return activeProduct(t, id, "Turmeric Powder", 150), nil
		},
	}

	uc := NewAddToCartUseCase(cartRepo, productRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddToCartCommand{UserID: 1, ProductID: 5})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, uint(11), result.ItemID)
	assert.Equal(t, 1, result.Quantity)
}

func TestAddToCartUseCase_Execute_IncrementsExisting(t *testing.T) {
	existing := cartItem(t, 11, 1, 5, 2)
	var updated *cart.CartItem
	cartRepo := &mockCartItemRepository{
		GetByUserAndProductFunc: func(ctx context.Context, userID, productID uint) (*cart.CartItem, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, item *cart.CartItem) error {
			updated = item
			return nil
		},
		SaveFunc: func(ctx context.Context, item *cart.CartItem) error {
			t.Fatal("save should not be called for an existing item")
			return nil
		},
	}
	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
			return activeProduct(t, id, "Turmeric Powder", 150), nil
		},
	}

	uc := NewAddToCartUseCase(cartRepo, productRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddToCartCommand{UserID: 1, ProductID: 5})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, 3, result.Quantity)
}

func TestAddToCartUseCase_Execute_UnknownProduct(t *testing.T) {
	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
			return nil, errors.New("record not found")
		},
	}

	uc := NewAddToCartUseCase(&mockCartItemRepository{}, productRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddToCartCommand{UserID: 1, ProductID: 99})
	assert.Error(t, err)
}

func TestViewCartUseCase_Execute(t *testing.T) {
	cartRepo := &mockCartItemRepository{
		ListByUserFunc: func(ctx context.Context, userID uint) ([]*cart.CartItem, error) {
			return []*cart.CartItem{
				cartItem(t, 1, 1, 5, 2),
				cartItem(t, 2, 1, 7, 1),
			}, nil
		},
	}
	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
			switch id {
			case 5:
				return activeProduct(t, 5, "Turmeric Powder", 150), nil
			case 7:
				return activeProduct(t, 7, "Ghee", 950), nil
			}
			return nil, errors.New("record not found")
		},
	}

	uc := NewViewCartUseCase(cartRepo, productRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ViewCartQuery{UserID: 1})
	require.NoError(t, err)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, 2, result.UniqueProductCount)
	assert.Equal(t, int64(300), result.Lines[0].LineTotal)
	assert.Equal(t, int64(1250), result.Subtotal)
	assert.Equal(t, "৳1250", result.SubtotalDisplay)
}

func TestViewCartUseCase_Execute_SkipsMissingProducts(t *testing.T) {
	cartRepo := &mockCartItemRepository{
		ListByUserFunc: func(ctx context.Context, userID uint) ([]*cart.CartItem, error) {
			return []*cart.CartItem{cartItem(t, 1, 1, 5, 2)}, nil
		},
	}
	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
			return nil, errors.New("record not found")
		},
	}

	uc := NewViewCartUseCase(cartRepo, productRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ViewCartQuery{UserID: 1})
	require.NoError(t, err)

	assert.Empty(t, result.Lines)
	// The item still exists in the cart even though its line is hidden.
	assert.Equal(t, 1, result.UniqueProductCount)
	assert.Equal(t, int64(0), result.Subtotal)
}

func TestRemoveFromCartUseCase_Execute(t *testing.T) {
	var gotItemID, gotUserID uint
	cartRepo := &mockCartItemRepository{
		DeleteForUserFunc: func(ctx context.Context, itemID, userID uint) error {
			gotItemID, gotUserID = itemID, userID
			return nil
		},
	}

	uc := NewRemoveFromCartUseCase(cartRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), RemoveFromCartCommand{UserID: 2, ItemID: 9})
	require.NoError(t, err)

	assert.Equal(t, uint(9), result.ItemID)
	assert.Equal(t, uint(9), gotItemID)
	assert.Equal(t, uint(2), gotUserID)
}

func TestRemoveFromCartUseCase_Execute_ForeignItem(t *testing.T) {
	cartRepo := &mockCartItemRepository{
		DeleteForUserFunc: func(ctx context.Context, itemID, userID uint) error {
			return errors.New("record not found")
		},
	}

	uc := NewRemoveFromCartUseCase(cartRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), RemoveFromCartCommand{UserID: 2, ItemID: 9})
	assert.Error(t, err)
}
