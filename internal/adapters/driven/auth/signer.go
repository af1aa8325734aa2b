package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Ensure Signer implements TokenSigner
var _ driven.TokenSigner = (*Signer)(nil)

// accessJWTClaims wraps domain.AccessClaims for JWT compatibility
type accessJWTClaims struct {
	UserID      string              `json:"user_id"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Email       string              `json:"email"`
	CompanyID   *string             `json:"company_id,omitempty"`
	Memberships []domain.Membership `json:"memberships"`
	jwt.RegisteredClaims
}

// refreshJWTClaims wraps domain.RefreshClaims for JWT compatibility
type refreshJWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	SID    string `json:"sid"`
	jwt.RegisteredClaims
}

// Signer signs and verifies HS256 tokens. Access and refresh tokens share
// the same secret; what makes a refresh token a refresh token is the session
// entry behind its sid, enforced by the service layer.
type Signer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewSigner creates a new token signer with the given secret and lifetimes
func NewSigner(secret string, accessTTL, refreshTTL time.Duration) *Signer {
	return &Signer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// SignAccess signs a short-lived access token embedding the claims
func (s *Signer) SignAccess(claims *domain.AccessClaims) (string, error) {
	now := time.Now()
	jc := accessJWTClaims{
		UserID:      claims.UserID,
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		Email:       claims.Email,
		CompanyID:   claims.CompanyID,
		Memberships: claims.Memberships,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jc)
	return token.SignedString(s.secret)
}

// SignRefresh signs a long-lived refresh token carrying the session id
func (s *Signer) SignRefresh(claims *domain.RefreshClaims) (string, error) {
	now := time.Now()
	jc := refreshJWTClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		SID:    claims.SID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jc)
	return token.SignedString(s.secret)
}

// VerifyAccess validates signature and expiry and extracts the claims
func (s *Signer) VerifyAccess(tokenString string) (*domain.AccessClaims, error) {
	var claims accessJWTClaims
	if err := s.parse(tokenString, &claims); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &domain.AccessClaims{
		UserID:      claims.UserID,
		FirstName:   claims.FirstName,
		LastName:    claims.LastName,
		Email:       claims.Email,
		CompanyID:   claims.CompanyID,
		Memberships: claims.Memberships,
	}, nil
}

// VerifyRefresh validates signature and expiry and extracts the claims
func (s *Signer) VerifyRefresh(tokenString string) (*domain.RefreshClaims, error) {
	var claims refreshJWTClaims
	if err := s.parse(tokenString, &claims); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &domain.RefreshClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		SID:    claims.SID,
	}, nil
}

func (s *Signer) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}
