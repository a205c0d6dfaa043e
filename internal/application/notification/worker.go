package notification

import (
	"context"
	"errors"
	"time"

	"rannaghore/internal/application/notification/usecases"
	domain "rannaghore/internal/domain/notification"
	"rannaghore/internal/shared/logger"
)

const pendingScanInterval = time.Minute

// Worker drains the delivery queue. It also periodically rescues pending
// notifications whose queue push was lost.
type Worker struct {
	queue            domain.Queue
	notificationRepo domain.NotificationRepository
	deliver          usecases.DeliverNotificationExecutor
	logger           logger.Interface
}

func NewWorker(
	queue domain.Queue,
	notificationRepo domain.NotificationRepository,
	deliver usecases.DeliverNotificationExecutor,
	logger logger.Interface,
) *Worker {
	return &Worker{
		queue:            queue,
		notificationRepo: notificationRepo,
		deliver:          deliver,
		logger:           logger,
	}
}

// Run blocks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("notification worker started")

	ticker := time.NewTicker(pendingScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("notification worker stopped")
			return
		case <-ticker.C:
			w.rescuePending(ctx)
		default:
		}

		id, err := w.queue.Pop(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			w.logger.Warnw("failed to pop from notification queue", "error", err)
			time.Sleep(time.Second)
			continue
		}

		w.deliverOne(ctx, id)
	}
}

func (w *Worker) deliverOne(ctx context.Context, id uint) {
	if _, err := w.deliver.Execute(ctx, usecases.DeliverNotificationCommand{NotificationID: id}); err != nil {
		w.logger.Errorw("notification delivery errored", "notification_id", id, "error", err)
	}
}

func (w *Worker) rescuePending(ctx context.Context) {
	pending, err := w.notificationRepo.ListPending(ctx, 50)
	if err != nil {
		w.logger.Warnw("failed to list pending notifications", "error", err)
		return
	}
	for _, n := range pending {
		w.deliverOne(ctx, n.ID())
	}
}
