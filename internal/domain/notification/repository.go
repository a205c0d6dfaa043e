package notification

import "context"

type NotificationRepository interface {
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListPending(ctx context.Context, limit int) ([]*Notification, error)
}

// Queue carries notification IDs from the web process to the delivery
// worker. Pop blocks until an ID is available or the context is done.
type Queue interface {
	Push(ctx context.Context, notificationID uint) error
	Pop(ctx context.Context) (uint, error)
}
