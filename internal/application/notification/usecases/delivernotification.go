package usecases

import (
	"context"
	"fmt"

	"rannaghore/internal/domain/notification"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type DeliverNotificationCommand struct {
	NotificationID uint
}

type DeliverNotificationResult struct {
	NotificationID uint   `json:"notification_id"`
	Status         string `json:"status"`
}

// DeliverNotificationUseCase renders a queued notification and attempts to
// send it. Delivery outcomes are recorded on the notification row; a send
// failure is not an error for the caller, the notification is just marked
// failed.
type DeliverNotificationUseCase struct {
	notificationRepo notification.NotificationRepository
	mailer           Mailer
	logger           logger.Interface
}

func NewDeliverNotificationUseCase(
	notificationRepo notification.NotificationRepository,
	mailer Mailer,
	logger logger.Interface,
) *DeliverNotificationUseCase {
	return &DeliverNotificationUseCase{
		notificationRepo: notificationRepo,
		mailer:           mailer,
		logger:           logger,
	}
}

func (uc *DeliverNotificationUseCase) Execute(ctx context.Context, cmd DeliverNotificationCommand) (*DeliverNotificationResult, error) {
	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		uc.logger.Errorw("failed to load notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("notification %d not found", cmd.NotificationID))
	}

	if n.Status() == notification.StatusSent {
		uc.logger.Infow("notification already sent", "notification_id", n.ID())
		return &DeliverNotificationResult{NotificationID: n.ID(), Status: string(n.Status())}, nil
	}

	email, err := RenderEmail(n)
	if err != nil {
		uc.logger.Errorw("failed to render notification", "notification_id", n.ID(), "error", err)
		n.MarkFailed(err.Error())
		if updateErr := uc.notificationRepo.Update(ctx, n); updateErr != nil {
			uc.logger.Errorw("failed to record notification failure", "notification_id", n.ID(), "error", updateErr)
		}
		return nil, errors.NewInternalError("failed to render notification")
	}

	var sent bool
	if email.HTMLBody != "" {
		sent = uc.mailer.SendHTML(n.Recipient(), email.Subject, email.HTMLBody)
	} else {
		sent = uc.mailer.SendPlain(n.Recipient(), email.Subject, email.Body)
	}

	if sent {
		n.MarkSent()
		uc.logger.Infow("notification delivered", "notification_id", n.ID(), "kind", n.Kind())
	} else {
		n.MarkFailed("email send failed")
		uc.logger.Warnw("notification delivery failed", "notification_id", n.ID(), "kind", n.Kind(), "recipient", n.Recipient())
	}

	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to update notification status", "notification_id", n.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update notification")
	}

	return &DeliverNotificationResult{
		NotificationID: n.ID(),
		Status:         string(n.Status()),
	}, nil
}
