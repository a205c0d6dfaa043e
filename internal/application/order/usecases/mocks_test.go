package usecases

import (
	"context"

	domain "rannaghore/internal/domain/notification"
	"rannaghore/internal/domain/order"
	"rannaghore/internal/domain/product"
	"rannaghore/internal/shared/logger"
)

type mockOrderRepository struct {
	SaveFunc           func(ctx context.Context, o *order.Order) error
	GetByIDForUserFunc func(ctx context.Context, orderID, userID uint) (*order.Order, error)
}

func (m *mockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByIDForUser(ctx context.Context, orderID, userID uint) (*order.Order, error) {
	if m.GetByIDForUserFunc != nil {
		return m.GetByIDForUserFunc(ctx, orderID, userID)
	}
	return nil, nil
}

type mockNumberAllocator struct {
	NextFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberAllocator) Next(ctx context.Context) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return "RP-0001", nil
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

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockDispatcher struct {
	DispatchFunc func(ctx context.Context, kind domain.Kind, recipient string, payload map[string]string)
}

func (m *mockDispatcher) Dispatch(ctx context.Context, kind domain.Kind, recipient string, payload map[string]string) {
	if m.DispatchFunc != nil {
		m.DispatchFunc(ctx, kind, recipient, payload)
	}
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
