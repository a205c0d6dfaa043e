package ticket

import "rannaghore/internal/application/ticket/usecases"

// SubmitTicketRequest binds the multipart support form. The attachment part
// is read separately from the request body.
type SubmitTicketRequest struct {
	Name        string `form:"name" binding:"required,max=100"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone" binding:"max=30"`
	OrderNumber string `form:"order_number" binding:"max=20"`
	Subject     string `form:"subject" binding:"required"`
	Message     string `form:"message" binding:"required,max=5000"`
}

func (r *SubmitTicketRequest) ToCommand(attachment *usecases.AttachmentInput) usecases.SubmitTicketCommand {
	return usecases.SubmitTicketCommand{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		OrderNumber: r.OrderNumber,
		Subject:     r.Subject,
		Message:     r.Message,
		Attachment:  attachment,
	}
}

type TrackTicketRequest struct {
	TicketNumber string `json:"ticket_number" binding:"required,max=20"`
	Email        string `json:"email" binding:"required,email"`
}

type RateTicketRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback" binding:"max=2000"`
}
