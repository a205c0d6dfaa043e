package usecases

import (
	"context"
	"strings"
	"time"

	"rannaghore/internal/domain/ticket"
	"rannaghore/internal/shared/errors"
	"rannaghore/internal/shared/logger"
)

type TrackTicketQuery struct {
	TicketNumber string
	Email        string
}

type TrackTicketResult struct {
	TicketNumber  string `json:"ticket_number"`
	Name          string `json:"name"`
	Subject       string `json:"subject"`
	SubjectLabel  string `json:"subject_label"`
	Message       string `json:"message"`
	OrderNumber   string `json:"order_number,omitempty"`
	Status        string `json:"status"`
	HasAttachment bool   `json:"has_attachment"`
	Rating        int    `json:"rating,omitempty"`
	Feedback      string `json:"feedback,omitempty"`
	SubmittedAt   string `json:"submitted_at"`
	ClosedAt      string `json:"closed_at,omitempty"`
}

type TrackTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewTrackTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *TrackTicketUseCase {
	return &TrackTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute looks a ticket up by number and email. Both must match the same
// ticket; any mismatch reports the same generic not-found, so the endpoint
// cannot be used to probe which ticket numbers exist.
func (uc *TrackTicketUseCase) Execute(ctx context.Context, query TrackTicketQuery) (*TrackTicketResult, error) {
	number := strings.ToUpper(strings.TrimSpace(query.TicketNumber))
	email := strings.ToLower(strings.TrimSpace(query.Email))

	if number == "" {
		return nil, errors.NewValidationError("ticket number is required")
	}
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	t, err := uc.ticketRepo.GetByNumberAndEmail(ctx, number, email)
	if err != nil {
		uc.logger.Infow("ticket lookup failed", "ticket_number", number)
		return nil, errors.NewNotFoundError("no ticket found for the given number and email")
	}

	result := &TrackTicketResult{
		TicketNumber:  t.Number(),
		Name:          t.Name(),
		Subject:       t.Subject().String(),
		SubjectLabel:  t.Subject().Label(),
		Message:       t.Message(),
		OrderNumber:   t.OrderNumber(),
		Status:        t.Status().String(),
		HasAttachment: t.AttachmentPath() != "",
		Rating:        t.Rating().Int(),
		Feedback:      t.Feedback(),
		SubmittedAt:   t.CreatedAt().Format(time.RFC3339),
	}
	if t.ClosedAt() != nil {
		result.ClosedAt = t.ClosedAt().Format(time.RFC3339)
	}
	return result, nil
}
