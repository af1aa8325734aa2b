package driven

import "github.com/stockhive-labs/stockhive-core/internal/core/domain"

// TokenSigner signs and verifies the access/refresh token pair (HMAC JWT).
// Both token kinds share the same signing secret; refresh usage is bound to
// the session store, not to a purpose claim.
type TokenSigner interface {
	// SignAccess signs a short-lived access token embedding the claims
	SignAccess(claims *domain.AccessClaims) (string, error)

	// SignRefresh signs a long-lived refresh token carrying the session id
	SignRefresh(claims *domain.RefreshClaims) (string, error)

	// VerifyAccess validates signature and expiry and extracts the claims.
	// Fails with domain.ErrInvalidToken on any verification error.
	VerifyAccess(token string) (*domain.AccessClaims, error)

	// VerifyRefresh validates signature and expiry and extracts the claims.
	// Fails with domain.ErrInvalidToken on any verification error.
	VerifyRefresh(token string) (*domain.RefreshClaims, error)
}
