package usecases

import (
	"context"
	"time"

	"rannaghore/internal/domain/ticket"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
}

type CloseTicketResult struct {
	TicketNumber string `json:"ticket_number"`
	Status       string `json:"status"`
	ClosedAt     string `json:"closed_at"`
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute closes a ticket on the customer's request. Closing an already
// closed ticket succeeds without changing anything.
func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Infow("close requested for unknown ticket", "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.Close(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to close ticket")
	}

	uc.logger.Infow("ticket closed", "ticket_id", cmd.TicketID, "ticket_number", t.Number())

	closedAt := ""
	if t.ClosedAt() != nil {
		closedAt = t.ClosedAt().Format(time.RFC3339)
	}

	return &CloseTicketResult{
		TicketNumber: t.Number(),
		Status:       t.Status().String(),
		ClosedAt:     closedAt,
	}, nil
}
