package driven

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// UserStore handles credential persistence (PostgreSQL)
type UserStore interface {
	// Create persists a new credential.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmailWithAuth resolves a credential and its active memberships.
	// Returns domain.ErrNotFound for an unknown email.
	GetByEmailWithAuth(ctx context.Context, email string) (*domain.AuthUser, error)

	// ListBoardMemberships returns all board-member records for a user,
	// active or not
	ListBoardMemberships(ctx context.Context, userID string) ([]domain.BoardMember, error)
}
