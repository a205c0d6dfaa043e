package ticket

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	vo "rannaghore/internal/domain/ticket/valueobjects"
)

// Ticket is a customer support request. It is created open, optionally carries
// one attachment, and moves to closed exactly once. Feedback may only be left
// on closed tickets.
type Ticket struct {
	id             uint
	number         string
	name           string
	email          string
	phone          string
	orderNumber    string
	subject        vo.TicketSubject
	message        string
	attachmentPath string
	status         vo.TicketStatus
	rating         vo.Rating
	feedback       string
	createdAt      time.Time
	updatedAt      time.Time
	closedAt       *time.Time
}

func NewTicket(name, email, phone, orderNumber string, subject vo.TicketSubject, message string) (*Ticket, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if !subject.IsValid() {
		return nil, fmt.Errorf("invalid ticket subject")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	now := time.Now()
	return &Ticket{
		name:        name,
		email:       email,
		phone:       strings.TrimSpace(phone),
		orderNumber: strings.TrimSpace(orderNumber),
		subject:     subject,
		message:     message,
		status:      vo.StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	name string,
	email string,
	phone string,
	orderNumber string,
	subject vo.TicketSubject,
	message string,
	attachmentPath string,
	status vo.TicketStatus,
	rating vo.Rating,
	feedback string,
	createdAt time.Time,
	updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}

	return &Ticket{
		id:             id,
		number:         number,
		name:           name,
		email:          email,
		phone:          phone,
		orderNumber:    orderNumber,
		subject:        subject,
		message:        message,
		attachmentPath: attachmentPath,
		status:         status,
		rating:         rating,
		feedback:       feedback,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		closedAt:       closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Name() string {
	return t.name
}

func (t *Ticket) Email() string {
	return t.email
}

func (t *Ticket) Phone() string {
	return t.phone
}

func (t *Ticket) OrderNumber() string {
	return t.orderNumber
}

func (t *Ticket) Subject() vo.TicketSubject {
	return t.subject
}

func (t *Ticket) Message() string {
	return t.message
}

func (t *Ticket) AttachmentPath() string {
	return t.attachmentPath
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Rating() vo.Rating {
	return t.rating
}

func (t *Ticket) HasRating() bool {
	return t.rating != 0
}

func (t *Ticket) Feedback() string {
	return t.feedback
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber assigns the public tracking number once, before the first save.
func (t *Ticket) SetNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if number == "" {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) AttachFile(path string) {
	t.attachmentPath = path
	t.updatedAt = time.Now()
}

// Close transitions the ticket to closed. Closing an already closed ticket is
// a no-op so repeated requests stay idempotent.
func (t *Ticket) Close() error {
	if t.status.IsClosed() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket in status %s", t.status)
	}
	now := time.Now()
	t.status = vo.StatusClosed
	t.closedAt = &now
	t.updatedAt = now
	return nil
}

// Rate records the customer's satisfaction score. A ticket can be rated in
// any status, and rating again overwrites the earlier score.
func (t *Ticket) Rate(rating vo.Rating, feedback string) error {
	if !rating.IsValid() {
		return fmt.Errorf("invalid rating")
	}
	t.rating = rating
	t.feedback = strings.TrimSpace(feedback)
	t.updatedAt = time.Now()
	return nil
}
