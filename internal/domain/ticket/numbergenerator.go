package ticket

import (
	"context"
	"fmt"

	"rannaghore/internal/shared/id"
)

const maxNumberAttempts = 5

// NumberGenerator produces tracking numbers that are unique among stored
// tickets.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// UniqueNumberGenerator draws random candidates and verifies them against the
// repository before handing them out. The random space is large enough that a
// handful of attempts always suffices in practice.
type UniqueNumberGenerator struct {
	repo TicketRepository
}

func NewUniqueNumberGenerator(repo TicketRepository) *UniqueNumberGenerator {
	return &UniqueNumberGenerator{repo: repo}
}

func (g *UniqueNumberGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number := id.NewTicketNumber()
		exists, err := g.repo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check ticket number: %w", err)
		}
		if !exists {
			return number, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique ticket number after %d attempts", maxNumberAttempts)
}
