package usecases

import (
	"context"
	"io"
	"strings"

	appnotification "rannaghore/internal/application/notification"
	"rannaghore/internal/domain/notification"
	"rannaghore/internal/domain/ticket"
	vo "rannaghore/internal/domain/ticket/valueobjects"
	"rannaghore/internal/shared/config"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

const submittedTimeFormat = "January 2, 2006 at 3:04 PM"

type AttachmentInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type SubmitTicketCommand struct {
	Name        string
	Email       string
	Phone       string
	OrderNumber string
	Subject     string
	Message     string
	Attachment  *AttachmentInput
}

type SubmitTicketResult struct {
	TicketID     uint   `json:"ticket_id"`
	TicketNumber string `json:"ticket_number"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

type SubmitTicketUseCase struct {
	ticketRepo      ticket.TicketRepository
	numberGenerator ticket.NumberGenerator
	fileStore       FileStore
	dispatcher      appnotification.Dispatcher
	uploadConfig    config.UploadConfig
	shopConfig      config.ShopConfig
	logger          logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo ticket.TicketRepository,
	numberGenerator ticket.NumberGenerator,
	fileStore FileStore,
	dispatcher appnotification.Dispatcher,
	uploadConfig config.UploadConfig,
	shopConfig config.ShopConfig,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo:      ticketRepo,
		numberGenerator: numberGenerator,
		fileStore:       fileStore,
		dispatcher:      dispatcher,
		uploadConfig:    uploadConfig,
		shopConfig:      shopConfig,
		logger:          logger,
	}
}

// Execute records a new support ticket and queues two emails: a confirmation
// to the customer and an alert to the support inbox. An oversized attachment
// rolls the whole submission back; a failed email never does.
func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid submit ticket command", "error", err)
		return nil, err
	}

	subject, err := vo.NewTicketSubject(cmd.Subject)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := ticket.NewTicket(cmd.Name, cmd.Email, cmd.Phone, cmd.OrderNumber, subject, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGenerator.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}
	if err := t.SetNumber(number); err != nil {
		return nil, errors.NewInternalError("failed to create ticket")
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "ticket_number", number, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	if cmd.Attachment != nil {
		if err := uc.storeAttachment(ctx, t, cmd.Attachment); err != nil {
			return nil, err
		}
	}

	uc.notify(ctx, t)

	uc.logger.Infow("support ticket created", "ticket_number", t.Number(), "subject", subject)

	return &SubmitTicketResult{
		TicketID:     t.ID(),
		TicketNumber: t.Number(),
		Status:       t.Status().String(),
		Message:      "Your support ticket " + t.Number() + " has been created. We will get back to you within 24 hours.",
	}, nil
}

// storeAttachment saves the upload and rejects oversized files after the
// fact, deleting both the stored file and the just-created ticket so the
// submission leaves no trace.
func (uc *SubmitTicketUseCase) storeAttachment(ctx context.Context, t *ticket.Ticket, attachment *AttachmentInput) error {
	path, err := uc.fileStore.Save(ctx, attachment.Filename, attachment.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment", "ticket_number", t.Number(), "error", err)
		uc.rollback(ctx, t, "")
		return errors.NewInternalError("failed to store attachment")
	}

	if attachment.Size > uc.uploadConfig.MaxAttachmentSize {
		uc.logger.Warnw("attachment exceeds size limit",
			"ticket_number", t.Number(),
			"size", attachment.Size,
			"limit", uc.uploadConfig.MaxAttachmentSize,
		)
		uc.rollback(ctx, t, path)
		return errors.NewValidationError("attachment must be smaller than 5MB")
	}

	t.AttachFile(path)
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to record attachment", "ticket_number", t.Number(), "error", err)
		uc.rollback(ctx, t, path)
		return errors.NewInternalError("failed to store attachment")
	}
	return nil
}

func (uc *SubmitTicketUseCase) rollback(ctx context.Context, t *ticket.Ticket, storedPath string) {
	if storedPath != "" {
		if err := uc.fileStore.Delete(ctx, storedPath); err != nil {
			uc.logger.Warnw("failed to delete stored attachment", "path", storedPath, "error", err)
		}
	}
	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to roll back ticket", "ticket_id", t.ID(), "error", err)
	}
}

func (uc *SubmitTicketUseCase) notify(ctx context.Context, t *ticket.Ticket) {
	submitted := t.CreatedAt().Format(submittedTimeFormat)

	uc.dispatcher.Dispatch(ctx, notification.KindTicketConfirmation, t.Email(), map[string]string{
		"ref":           t.Number(),
		"ticket_number": t.Number(),
		"name":          t.Name(),
		"subject":       t.Subject().Label(),
		"status":        "Open",
		"submitted":     submitted,
		"message":       t.Message(),
		"support_phone": uc.shopConfig.SupportPhone,
	})

	uc.dispatcher.Dispatch(ctx, notification.KindTicketAlert, uc.shopConfig.SupportEmail, map[string]string{
		"ref":           t.Number(),
		"ticket_number": t.Number(),
		"name":          t.Name(),
		"email":         t.Email(),
		"phone":         t.Phone(),
		"order_number":  t.OrderNumber(),
		"subject":       t.Subject().Label(),
		"status":        "Open",
		"submitted":     submitted,
		"message":       t.Message(),
	})
}

func (uc *SubmitTicketUseCase) validateCommand(cmd SubmitTicketCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("name is required")
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return errors.NewValidationError("email is required")
	}
	if strings.TrimSpace(cmd.Subject) == "" {
		return errors.NewValidationError("subject is required")
	}
	if strings.TrimSpace(cmd.Message) == "" {
		return errors.NewValidationError("message is required")
	}
	return nil
}
