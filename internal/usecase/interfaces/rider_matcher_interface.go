package interfaces

import (
	"context"

	"smartride/internal/domain/entities"
)

// IRiderMatcher finds a rider for a draft. The production implementation
// simulates matching with a fixed delay; tests inject an immediate matcher.
type IRiderMatcher interface {
	Match(ctx context.Context, draft entities.BookingDraft) (entities.Rider, error)
}
