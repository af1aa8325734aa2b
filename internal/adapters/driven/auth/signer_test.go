package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

func testAccessClaims() *domain.AccessClaims {
	companyID := "company-1"
	branchID := "branch-1"
	return &domain.AccessClaims{
		UserID:    "user-123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CompanyID: &companyID,
		Memberships: []domain.Membership{
			{Role: domain.RoleBranchAdmin, BranchID: &branchID},
		},
	}
}

func TestSignAccess_RoundTrip(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour, 7*24*time.Hour)

	token, err := signer.SignAccess(testAccessClaims())
	if err != nil {
		t.Fatalf("failed to sign access token: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("expected a three-part JWT, got %q", token)
	}

	claims, err := signer.VerifyAccess(token)
	if err != nil {
		t.Fatalf("failed to verify access token: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected user id user-123, got %q", claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("expected email ada@example.com, got %q", claims.Email)
	}
	if claims.CompanyID == nil || *claims.CompanyID != "company-1" {
		t.Error("expected company id to survive the round trip")
	}
	if len(claims.Memberships) != 1 || claims.Memberships[0].Role != domain.RoleBranchAdmin {
		t.Errorf("expected embedded memberships, got %+v", claims.Memberships)
	}
}

func TestSignRefresh_RoundTrip(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour, 7*24*time.Hour)

	token, err := signer.SignRefresh(&domain.RefreshClaims{
		UserID: "user-123",
		Email:  "ada@example.com",
		SID:    "01ARZ3NDEKTSV4RRFFQ69G5FAV",
	})
	if err != nil {
		t.Fatalf("failed to sign refresh token: %v", err)
	}

	claims, err := signer.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("failed to verify refresh token: %v", err)
	}
	if claims.SID != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("expected sid to survive the round trip, got %q", claims.SID)
	}
	if claims.UserID != "user-123" || claims.Email != "ada@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestVerifyAccess_WrongSecret(t *testing.T) {
	signer := NewSigner("secret-a", time.Hour, time.Hour)
	other := NewSigner("secret-b", time.Hour, time.Hour)

	token, _ := signer.SignAccess(testAccessClaims())

	if _, err := other.VerifyAccess(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyAccess_Expired(t *testing.T) {
	signer := NewSigner("test-secret", -time.Minute, time.Hour)

	token, _ := signer.SignAccess(testAccessClaims())

	if _, err := signer.VerifyAccess(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRefresh_Expired(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour, -time.Minute)

	token, _ := signer.SignRefresh(&domain.RefreshClaims{
		UserID: "user-123",
		Email:  "ada@example.com",
		SID:    "sid-1",
	})

	if _, err := signer.VerifyRefresh(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRefresh_Garbage(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour, time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := signer.VerifyRefresh(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestSharedSecret_CrossKindVerify(t *testing.T) {
	// Both kinds share the secret, so a refresh token passes access
	// verification structurally. The session store is what gates refresh
	// usage, not the signature.
	signer := NewSigner("test-secret", time.Hour, time.Hour)

	refresh, _ := signer.SignRefresh(&domain.RefreshClaims{
		UserID: "user-123",
		Email:  "ada@example.com",
		SID:    "sid-1",
	})

	claims, err := signer.VerifyAccess(refresh)
	if err != nil {
		t.Fatalf("expected cross-kind verification to pass signature checks: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected shared user_id claim, got %q", claims.UserID)
	}
}
