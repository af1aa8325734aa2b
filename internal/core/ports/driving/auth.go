package driving

import (
	"context"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// AuthService is the authentication and session-lifecycle API
type AuthService interface {
	// Signup creates a new credential.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Signup(ctx context.Context, req domain.SignupRequest) error

	// Login verifies credentials, signs a token pair, and tracks the session.
	// A login only succeeds once the session entry is durably stored.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenPair, error)

	// Logout deletes the session named by the refresh token's sid.
	// Deleting an already-gone session is still success.
	Logout(ctx context.Context, refreshToken string) error

	// Refresh rotates the session: verifies the refresh token against the
	// tracked entry, mints a fresh sid, and returns a new token pair.
	// The old pair becomes permanently unusable.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)

	// HasCompany reports whether the token's user holds at least one active
	// board membership
	HasCompany(ctx context.Context, accessToken string) (bool, error)

	// Authenticate verifies an access token and returns the embedded claims
	// for use as the request principal
	Authenticate(ctx context.Context, accessToken string) (*domain.AccessClaims, error)
}
