package usecases

import (
	"context"
	"io"
)

// FileStore persists uploaded ticket attachments.
type FileStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

type TrackTicketExecutor interface {
	Execute(ctx context.Context, query TrackTicketQuery) (*TrackTicketResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

type RateTicketExecutor interface {
	Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error)
}

type SearchFAQsExecutor interface {
	Execute(ctx context.Context, query SearchFAQsQuery) (*SearchFAQsResult, error)
}

type ListFAQsExecutor interface {
	Execute(ctx context.Context, query ListFAQsQuery) (*ListFAQsResult, error)
}
