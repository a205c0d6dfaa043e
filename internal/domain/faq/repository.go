package faq

import "context"

type FAQRepository interface {
	// Search matches the query case-insensitively against question and
	// answer text of active FAQs, returning at most limit results ordered
	// by position. An empty query returns no results.
	Search(ctx context.Context, query string, limit int) ([]*FAQ, error)
	ListActive(ctx context.Context) ([]*FAQ, error)
	ListByCategory(ctx context.Context, category string) ([]*FAQ, error)
}
