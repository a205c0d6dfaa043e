package mappers

import (
	"fmt"

	"rannaghore/internal/domain/ticket"
	vo "rannaghore/internal/domain/ticket/valueobjects"
	"rannaghore/internal/infrastructure/persistence/models"
)

type TicketMapper interface {
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		ID:             entity.ID(),
		Number:         entity.Number(),
		Name:           entity.Name(),
		Email:          entity.Email(),
		Phone:          entity.Phone(),
		OrderNumber:    entity.OrderNumber(),
		Subject:        entity.Subject().String(),
		Message:        entity.Message(),
		AttachmentPath: entity.AttachmentPath(),
		Status:         entity.Status().String(),
		Rating:         entity.Rating().Int(),
		Feedback:       entity.Feedback(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
		ClosedAt:       entity.ClosedAt(),
	}
}

func (m *ticketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, fmt.Errorf("ticket model is nil")
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Name,
		model.Email,
		model.Phone,
		model.OrderNumber,
		vo.TicketSubject(model.Subject),
		model.Message,
		model.AttachmentPath,
		vo.TicketStatus(model.Status),
		vo.Rating(model.Rating),
		model.Feedback,
		model.CreatedAt,
		model.UpdatedAt,
		model.ClosedAt,
	)
}
