package notification

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindOrderConfirmation  Kind = "order_confirmation"
	KindTicketConfirmation Kind = "ticket_confirmation"
	KindTicketAlert        Kind = "ticket_alert"
)

var validKinds = map[Kind]bool{
	KindOrderConfirmation:  true,
	KindTicketConfirmation: true,
	KindTicketAlert:        true,
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return validKinds[k]
}

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Notification is a queued outbound message. The worker renders the payload
// into an email, attempts delivery, and records the outcome. Delivery is
// best effort: a failed notification never blocks the operation that
// produced it.
type Notification struct {
	id        uint
	kind      Kind
	recipient string
	payload   map[string]string
	status    Status
	attempts  int
	lastError string
	createdAt time.Time
	updatedAt time.Time
}

func NewNotification(kind Kind, recipient string, payload map[string]string) (*Notification, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}
	if recipient == "" {
		return nil, fmt.Errorf("recipient is required")
	}
	if payload == nil {
		payload = map[string]string{}
	}

	now := time.Now()
	return &Notification{
		kind:      kind,
		recipient: recipient,
		payload:   payload,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructNotification(
	id uint,
	kind Kind,
	recipient string,
	payload map[string]string,
	status Status,
	attempts int,
	lastError string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}
	if payload == nil {
		payload = map[string]string{}
	}

	return &Notification{
		id:        id,
		kind:      kind,
		recipient: recipient,
		payload:   payload,
		status:    status,
		attempts:  attempts,
		lastError: lastError,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) Kind() Kind {
	return n.kind
}

func (n *Notification) Recipient() string {
	return n.recipient
}

func (n *Notification) Payload() map[string]string {
	return n.payload
}

func (n *Notification) Status() Status {
	return n.status
}

func (n *Notification) Attempts() int {
	return n.attempts
}

func (n *Notification) LastError() string {
	return n.lastError
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkSent() {
	n.status = StatusSent
	n.attempts++
	n.lastError = ""
	n.updatedAt = time.Now()
}

func (n *Notification) MarkFailed(reason string) {
	n.status = StatusFailed
	n.attempts++
	n.lastError = reason
	n.updatedAt = time.Now()
}
