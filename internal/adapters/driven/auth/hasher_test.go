package auth

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	hasher := NewHasher()

	hash, err := hasher.Hash("mypassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash")
	}
	if hash == "mypassword" {
		t.Error("hash should not equal plaintext password")
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected argon2id encoded hash, got %q", hash)
	}
}

func TestHash_DifferentHashesForSamePassword(t *testing.T) {
	hasher := NewHasher()

	hash1, _ := hasher.Hash("password123")
	hash2, _ := hasher.Hash("password123")

	if hash1 == hash2 {
		t.Error("expected different hashes for same password (due to salt)")
	}
}

func TestVerify_CorrectPassword(t *testing.T) {
	hasher := NewHasher()

	password := "correctpassword"
	hash, _ := hasher.Hash(password)

	if !hasher.Verify(password, hash) {
		t.Error("expected password verification to succeed")
	}
}

func TestVerify_IncorrectPassword(t *testing.T) {
	hasher := NewHasher()

	hash, _ := hasher.Hash("correctpassword")

	if hasher.Verify("wrongpassword", hash) {
		t.Error("expected password verification to fail for wrong password")
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	hasher := NewHasher()

	cases := []string{
		"",
		"not-a-valid-hash",
		"$argon2id$v=19$m=65536,t=3,p=2$short",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	}
	for _, hash := range cases {
		if hasher.Verify("password", hash) {
			t.Errorf("expected verification to fail for hash %q", hash)
		}
	}
}

func TestVerify_ParametersFromHash(t *testing.T) {
	// A hash produced under different cost parameters still verifies,
	// because the parameters are read from the hash itself
	weaker := &Hasher{memory: 8 * 1024, time: 1, threads: 1}
	hash, err := weaker.Hash("portable")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if !NewHasher().Verify("portable", hash) {
		t.Error("expected verification to succeed with parameters taken from the hash")
	}
}
