package usecases

import (
	"context"

	"rannaghore/internal/domain/notification"
	"rannaghore/internal/shared/logger"
)

type mockNotificationRepository struct {
	SaveFunc        func(ctx context.Context, n *notification.Notification) error
	UpdateFunc      func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc     func(ctx context.Context, id uint) (*notification.Notification, error)
	ListPendingFunc func(ctx context.Context, limit int) ([]*notification.Notification, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, limit)
	}
	return nil, nil
}

type mockMailer struct {
	SendPlainFunc          func(to, subject, body string) bool
	SendHTMLFunc           func(to, subject, htmlBody string) bool
	SendWithAttachmentFunc func(to, subject, body, attachmentPath string) bool
}

func (m *mockMailer) SendPlain(to, subject, body string) bool {
	if m.SendPlainFunc != nil {
		return m.SendPlainFunc(to, subject, body)
	}
	return true
}

func (m *mockMailer) SendHTML(to, subject, htmlBody string) bool {
	if m.SendHTMLFunc != nil {
		return m.SendHTMLFunc(to, subject, htmlBody)
	}
	return true
}

func (m *mockMailer) SendWithAttachment(to, subject, body, attachmentPath string) bool {
	if m.SendWithAttachmentFunc != nil {
		return m.SendWithAttachmentFunc(to, subject, body, attachmentPath)
	}
	return true
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
