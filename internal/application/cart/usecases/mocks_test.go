package usecases

import (
	"context"

	"rannaghore/internal/domain/cart"
	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/logger"
)

type mockCartItemRepository struct {
	SaveFunc                func(ctx context.Context, item *cart.CartItem) error
	UpdateFunc              func(ctx context.Context, item *cart.CartItem) error
	DeleteForUserFunc       func(ctx context.Context, itemID, userID uint) error
	GetByUserAndProductFunc func(ctx context.Context, userID, productID uint) (*cart.CartItem, error)
	ListByUserFunc          func(ctx context.Context, userID uint) ([]*cart.CartItem, error)
}

func (m *mockCartItemRepository) Save(ctx context.Context, item *cart.CartItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *mockCartItemRepository) Update(ctx context.Context, item *cart.CartItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockCartItemRepository) DeleteForUser(ctx context.Context, itemID, userID uint) error {
	if m.DeleteForUserFunc != nil {
		return m.DeleteForUserFunc(ctx, itemID, userID)
	}
	return nil
}

func (m *mockCartItemRepository) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*cart.CartItem, error) {
	if m.GetByUserAndProductFunc != nil {
		return m.GetByUserAndProductFunc(ctx, userID, productID)
	}
	return nil, nil
}

func (m *mockCartItemRepository) ListByUser(ctx context.Context, userID uint) ([]*cart.CartItem, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockProductRepository struct {
	GetByIDFunc            func(ctx context.Context, id uint) (*product.Product, error)
	ListActiveFunc         func(ctx context.Context) ([]*product.Product, error)
	SearchFunc             func(ctx context.Context, query string) ([]*product.Product, error)
	DistinctCategoriesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) ListActive(ctx context.Context) ([]*product.Product, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockProductRepository) Search(ctx context.Context, query string) ([]*product.Product, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockProductRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	if m.DistinctCategoriesFunc != nil {
		return m.DistinctCategoriesFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
