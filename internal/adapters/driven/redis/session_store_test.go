package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
)

// setupTestSessionStore creates a test Redis client and SessionStore
func setupTestSessionStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewSessionStore(client, ttl)

	return store, mr, func() {
		client.Close()
		mr.Close()
	}
}

// createTestEntry creates a session entry with default values
func createTestEntry(sid string) *domain.SessionEntry {
	return &domain.SessionEntry{
		SessionID:    sid,
		UserID:       "user-1",
		AccessToken:  "access-abc",
		RefreshToken: "refresh-xyz",
	}
}

func TestSessionStore_Save_Success(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t, time.Hour)
	defer cleanup()

	ctx := context.Background()
	entry := createTestEntry("sid-123")

	if err := store.Save(ctx, entry); err != nil {
		t.Fatalf("unexpected error saving session: %v", err)
	}

	retrieved, err := store.Get(ctx, "sid-123")
	if err != nil {
		t.Fatalf("failed to retrieve saved session: %v", err)
	}

	if retrieved.SessionID != entry.SessionID {
		t.Errorf("expected session id %s, got %s", entry.SessionID, retrieved.SessionID)
	}
	if retrieved.UserID != entry.UserID {
		t.Errorf("expected user id %s, got %s", entry.UserID, retrieved.UserID)
	}
	if retrieved.RefreshToken != entry.RefreshToken {
		t.Errorf("expected refresh token %s, got %s", entry.RefreshToken, retrieved.RefreshToken)
	}
}

func TestSessionStore_Save_Overwrite(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t, time.Hour)
	defer cleanup()

	ctx := context.Background()
	entry := createTestEntry("sid-123")
	if err := store.Save(ctx, entry); err != nil {
		t.Fatalf("unexpected error saving session: %v", err)
	}

	entry.RefreshToken = "refresh-rotated"
	if err := store.Save(ctx, entry); err != nil {
		t.Fatalf("unexpected error overwriting session: %v", err)
	}

	retrieved, err := store.Get(ctx, "sid-123")
	if err != nil {
		t.Fatalf("failed to retrieve session: %v", err)
	}
	if retrieved.RefreshToken != "refresh-rotated" {
		t.Errorf("expected overwritten refresh token, got %s", retrieved.RefreshToken)
	}
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t, time.Hour)
	defer cleanup()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_Get_Expired(t *testing.T) {
	store, mr, cleanup := setupTestSessionStore(t, time.Minute)
	defer cleanup()

	ctx := context.Background()
	if err := store.Save(ctx, createTestEntry("sid-123")); err != nil {
		t.Fatalf("unexpected error saving session: %v", err)
	}

	// Advance past the TTL
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "sid-123")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestSessionStore_Save_ResetsTTL(t *testing.T) {
	store, mr, cleanup := setupTestSessionStore(t, time.Minute)
	defer cleanup()

	ctx := context.Background()
	if err := store.Save(ctx, createTestEntry("sid-123")); err != nil {
		t.Fatalf("unexpected error saving session: %v", err)
	}

	mr.FastForward(40 * time.Second)
	if err := store.Save(ctx, createTestEntry("sid-123")); err != nil {
		t.Fatalf("unexpected error re-saving session: %v", err)
	}
	mr.FastForward(40 * time.Second)

	// 80s since first save, 40s since second; the entry must still be live
	if _, err := store.Get(ctx, "sid-123"); err != nil {
		t.Errorf("expected session to survive after TTL reset, got %v", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t, time.Hour)
	defer cleanup()

	ctx := context.Background()
	if err := store.Save(ctx, createTestEntry("sid-123")); err != nil {
		t.Fatalf("unexpected error saving session: %v", err)
	}

	if err := store.Delete(ctx, "sid-123"); err != nil {
		t.Fatalf("unexpected error deleting session: %v", err)
	}

	_, err := store.Get(ctx, "sid-123")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSessionStore_Delete_MissingKey(t *testing.T) {
	store, _, cleanup := setupTestSessionStore(t, time.Hour)
	defer cleanup()

	if err := store.Delete(context.Background(), "never-existed"); err != nil {
		t.Errorf("expected deleting a missing key to succeed, got %v", err)
	}
}
