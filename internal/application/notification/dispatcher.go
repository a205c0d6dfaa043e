package notification

import (
	"context"

	domain "rannaghore/internal/domain/notification"
	"rannaghore/internal/shared/logger"
)

// Dispatcher hands a notification off for asynchronous delivery. Dispatch is
// best effort: it never returns an error, because no storefront operation
// should fail just because an email could not be queued.
type Dispatcher interface {
	Dispatch(ctx context.Context, kind domain.Kind, recipient string, payload map[string]string)
}

// QueueDispatcher persists the notification and pushes its ID onto the
// delivery queue for the worker to pick up.
type QueueDispatcher struct {
	notificationRepo domain.NotificationRepository
	queue            domain.Queue
	logger           logger.Interface
}

func NewQueueDispatcher(
	notificationRepo domain.NotificationRepository,
	queue domain.Queue,
	logger logger.Interface,
) *QueueDispatcher {
	return &QueueDispatcher{
		notificationRepo: notificationRepo,
		queue:            queue,
		logger:           logger,
	}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, kind domain.Kind, recipient string, payload map[string]string) {
	n, err := domain.NewNotification(kind, recipient, payload)
	if err != nil {
		d.logger.Errorw("failed to build notification", "kind", kind, "error", err)
		return
	}

	if err := d.notificationRepo.Save(ctx, n); err != nil {
		d.logger.Errorw("failed to persist notification", "kind", kind, "error", err)
		return
	}

	if err := d.queue.Push(ctx, n.ID()); err != nil {
		// The pending row remains; the worker's pending scan will retry it.
		d.logger.Warnw("failed to enqueue notification", "notification_id", n.ID(), "error", err)
		return
	}

	d.logger.Infow("notification queued", "notification_id", n.ID(), "kind", kind)
}
