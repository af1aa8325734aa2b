package driven

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// SessionStore tracks refresh sessions keyed by session id (Redis or
// in-process). Entries expire on their own after the refresh-token lifetime.
type SessionStore interface {
	// Save creates or overwrites the entry for its session id and resets
	// the entry's TTL
	Save(ctx context.Context, entry *domain.SessionEntry) error

	// Get retrieves the entry by session id.
	// Returns domain.ErrNotFound when absent or expired.
	Get(ctx context.Context, sessionID string) (*domain.SessionEntry, error)

	// Delete removes the entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, sessionID string) error
}
