package usecases

import (
	"context"
	"io"

	domain "rannaghore/internal/domain/notification"
	"rannaghore/internal/domain/faq"
	"rannaghore/internal/domain/ticket"
	"rannaghore/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc              func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc              func(ctx context.Context, id uint) error
	GetByIDFunc             func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByNumberFunc         func(ctx context.Context, number string) (*ticket.Ticket, error)
	GetByNumberAndEmailFunc func(ctx context.Context, number, email string) (*ticket.Ticket, error)
	ExistsByNumberFunc      func(ctx context.Context, number string) (bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumberAndEmail(ctx context.Context, number, email string) (*ticket.Ticket, error) {
	if m.GetByNumberAndEmailFunc != nil {
		return m.GetByNumberAndEmailFunc(ctx, number, email)
	}
	return nil, nil
}

func (m *mockTicketRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	if m.ExistsByNumberFunc != nil {
		return m.ExistsByNumberFunc(ctx, number)
	}
	return false, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TICKET-1A2B3C4D", nil
}

type mockFileStore struct {
	SaveFunc   func(ctx context.Context, filename string, content io.Reader) (string, error)
	DeleteFunc func(ctx context.Context, path string) error
}

func (m *mockFileStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, filename, content)
	}
	return "uploads/" + filename, nil
}

func (m *mockFileStore) Delete(ctx context.Context, path string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, path)
	}
	return nil
}

type mockDispatcher struct {
	DispatchFunc func(ctx context.Context, kind domain.Kind, recipient string, payload map[string]string)
}

func (m *mockDispatcher) Dispatch(ctx context.Context, kind domain.Kind, recipient string, payload map[string]string) {
	if m.DispatchFunc != nil {
		m.DispatchFunc(ctx, kind, recipient, payload)
	}
}

type mockFAQRepository struct {
	SearchFunc         func(ctx context.Context, query string, limit int) ([]*faq.FAQ, error)
	ListActiveFunc     func(ctx context.Context) ([]*faq.FAQ, error)
	ListByCategoryFunc func(ctx context.Context, category string) ([]*faq.FAQ, error)
}

func (m *mockFAQRepository) Search(ctx context.Context, query string, limit int) ([]*faq.FAQ, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockFAQRepository) ListActive(ctx context.Context) ([]*faq.FAQ, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockFAQRepository) ListByCategory(ctx context.Context, category string) ([]*faq.FAQ, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
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
