package usecases

import (
	"context"

	"rannaghore/internal/domain/ticket"
	vo "rannaghore/internal/domain/ticket/valueobjects"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type RateTicketCommand struct {
	TicketID uint
	Rating   int
	Feedback string
}

type RateTicketResult struct {
	TicketNumber string `json:"ticket_number"`
	Rating       int    `json:"rating"`
	Message      string `json:"message"`
}

type RateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewRateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *RateTicketUseCase {
	return &RateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *RateTicketUseCase) Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	rating, err := vo.NewRating(cmd.Rating)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Infow("rating requested for unknown ticket", "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.Rate(rating, cmd.Feedback); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket rating", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to save rating")
	}

	uc.logger.Infow("ticket rated", "ticket_id", cmd.TicketID, "rating", rating.Int())

	return &RateTicketResult{
		TicketNumber: t.Number(),
		Rating:       rating.Int(),
		Message:      "Thank you for your feedback!",
	}, nil
}
