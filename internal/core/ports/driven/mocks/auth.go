package mocks

import (
	"encoding/base64"
	"encoding/json"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Ensure mocks implement their ports
var (
	_ driven.PasswordHasher = (*MockPasswordHasher)(nil)
	_ driven.TokenSigner    = (*MockTokenSigner)(nil)
)

// MockPasswordHasher is a plain-text hasher for testing.
// NOT secure - only for testing.
type MockPasswordHasher struct {
	FailHash bool
}

// NewMockPasswordHasher creates a new MockPasswordHasher
func NewMockPasswordHasher() *MockPasswordHasher {
	return &MockPasswordHasher{}
}

// Hash returns the password prefixed with the argon2 tag so stores that
// check the tag precondition still accept it
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.FailHash {
		return "", errAdapterDown
	}
	return "$argon2id$mock$" + password, nil
}

// Verify compares against the mock hash format
func (m *MockPasswordHasher) Verify(password, hash string) bool {
	return hash == "$argon2id$mock$"+password
}

// MockTokenSigner encodes claims as base64 JSON. Like the production signer
// it draws no distinction between token kinds beyond their claim shape.
// NOT secure - only for testing.
type MockTokenSigner struct {
	FailSignAccess    bool
	FailSignRefresh   bool
	FailVerifyAccess  bool
	FailVerifyRefresh bool
}

// NewMockTokenSigner creates a new MockTokenSigner
func NewMockTokenSigner() *MockTokenSigner {
	return &MockTokenSigner{}
}

func (m *MockTokenSigner) SignAccess(claims *domain.AccessClaims) (string, error) {
	if m.FailSignAccess {
		return "", errAdapterDown
	}
	return encodeClaims(claims)
}

func (m *MockTokenSigner) SignRefresh(claims *domain.RefreshClaims) (string, error) {
	if m.FailSignRefresh {
		return "", errAdapterDown
	}
	return encodeClaims(claims)
}

func (m *MockTokenSigner) VerifyAccess(token string) (*domain.AccessClaims, error) {
	if m.FailVerifyAccess {
		return nil, domain.ErrInvalidToken
	}
	var claims domain.AccessClaims
	if err := decodeClaims(token, &claims); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &claims, nil
}

func (m *MockTokenSigner) VerifyRefresh(token string) (*domain.RefreshClaims, error) {
	if m.FailVerifyRefresh {
		return nil, domain.ErrInvalidToken
	}
	var claims domain.RefreshClaims
	if err := decodeClaims(token, &claims); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &claims, nil
}

func encodeClaims(claims any) (string, error) {
	data, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func decodeClaims(token string, into any) error {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, into)
}
