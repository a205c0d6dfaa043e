package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes a ticket entirely. Used to roll back a submission whose
	// attachment turned out to be invalid.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	// GetByNumberAndEmail is the public tracking lookup: both values must
	// match the same ticket or the lookup reports not found.
	GetByNumberAndEmail(ctx context.Context, number, email string) (*Ticket, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
