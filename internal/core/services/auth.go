package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface
type authService struct {
	userStore    driven.UserStore
	sessionStore driven.SessionStore
	hasher       driven.PasswordHasher
	signer       driven.TokenSigner
	logger       *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore driven.UserStore,
	sessionStore driven.SessionStore,
	hasher driven.PasswordHasher,
	signer driven.TokenSigner,
	logger *slog.Logger,
) driving.AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		hasher:       hasher,
		signer:       signer,
		logger:       logger,
	}
}

// Signup creates a new credential
func (s *authService) Signup(ctx context.Context, req domain.SignupRequest) error {
	if req.FirstName == "" || req.LastName == "" ||
		!domain.ValidEmail(req.Email) ||
		req.Password == "" || len(req.Password) > 20 {
		return domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return domain.ErrUnexpected
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.ErrEmailTaken
		}
		return domain.ErrUnexpected
	}

	return nil
}

// Login verifies credentials and creates a tracked session.
// Shape failures fold into ErrInvalidCredentials so a caller cannot tell
// which part was wrong.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenPair, error) {
	if !domain.ValidEmail(req.Email) || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userStore.GetByEmailWithAuth(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.ErrUnexpected
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	sid := domain.NewSessionID()
	pair, err := s.signPair(user, sid)
	if err != nil {
		return nil, domain.ErrUnexpected
	}

	// A login is not successful unless the session is durably tracked;
	// the already-computed tokens must not leak to the caller otherwise.
	entry := &domain.SessionEntry{
		SessionID:    sid,
		UserID:       user.ID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
	if err := s.sessionStore.Save(ctx, entry); err != nil {
		return nil, domain.ErrUnexpected
	}

	return pair, nil
}

// Logout deletes the session named by the refresh token's sid
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.ErrInvalidToken
	}

	claims, err := s.signer.VerifyRefresh(refreshToken)
	if err != nil {
		return domain.ErrInvalidToken
	}
	if claims.SID == "" {
		return domain.ErrInvalidToken
	}

	if err := s.sessionStore.Delete(ctx, claims.SID); err != nil {
		return domain.ErrUnexpected
	}
	return nil
}

// Refresh rotates the session. The provided token must match the tracked
// entry exactly; a stale token is rejected even if its signature and expiry
// are still valid.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidToken
	}

	claims, err := s.signer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.SID == "" || claims.Email == "" || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	// A miss covers TTL expiry and prior logout/rotation alike
	entry, err := s.sessionStore.Get(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, domain.ErrUnexpected
	}
	if entry.RefreshToken != refreshToken {
		return nil, domain.ErrInvalidToken
	}

	// Re-resolve the user: a credential deactivated mid-session must not
	// be able to rotate its way back in
	user, err := s.userStore.GetByEmailWithAuth(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, domain.ErrUnexpected
	}
	if user.ID != claims.UserID || !user.IsActive {
		return nil, domain.ErrInvalidToken
	}

	newSID := domain.NewSessionID()
	pair, err := s.signPair(user, newSID)
	if err != nil {
		return nil, domain.ErrUnexpected
	}

	newEntry := &domain.SessionEntry{
		SessionID:    newSID,
		UserID:       user.ID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
	if err := s.sessionStore.Save(ctx, newEntry); err != nil {
		return nil, domain.ErrUnexpected
	}

	// The old sid is deleted, not overwritten, so a stale caller cannot
	// resurrect it. If the delete fails the rotation still stands; the old
	// entry merely ages out on its own TTL.
	if err := s.sessionStore.Delete(ctx, claims.SID); err != nil {
		s.logger.Warn("failed to delete rotated session", "sid", claims.SID, "error", err)
	}

	return pair, nil
}

// HasCompany reports whether the token's user holds an active board membership
func (s *authService) HasCompany(ctx context.Context, accessToken string) (bool, error) {
	if accessToken == "" {
		return false, domain.ErrInvalidToken
	}

	claims, err := s.signer.VerifyAccess(accessToken)
	if err != nil {
		return false, domain.ErrInvalidToken
	}
	if claims.UserID == "" {
		return false, domain.ErrInvalidToken
	}

	memberships, err := s.userStore.ListBoardMemberships(ctx, claims.UserID)
	if err != nil {
		return false, domain.ErrUnexpected
	}

	for _, m := range memberships {
		if m.IsActive {
			return true, nil
		}
	}
	return false, nil
}

// Authenticate verifies an access token and returns the embedded claims
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*domain.AccessClaims, error) {
	if accessToken == "" {
		return nil, domain.ErrInvalidToken
	}

	claims, err := s.signer.VerifyAccess(accessToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// signPair signs an access/refresh pair for the user under the given sid
func (s *authService) signPair(user *domain.AuthUser, sid string) (*domain.TokenPair, error) {
	access, err := s.signer.SignAccess(&domain.AccessClaims{
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		CompanyID:   user.CompanyID,
		Memberships: user.Memberships,
	})
	if err != nil {
		return nil, err
	}

	refresh, err := s.signer.SignRefresh(&domain.RefreshClaims{
		UserID: user.ID,
		Email:  user.Email,
		SID:    sid,
	})
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
