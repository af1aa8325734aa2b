package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// errAdapterDown simulates a backing-store outage
var errAdapterDown = errors.New("mock adapter failure")

// Ensure MockSessionStore implements SessionStore
var _ driven.SessionStore = (*MockSessionStore)(nil)

// MockSessionStore is an in-memory SessionStore for testing.
// TTL is not modeled; use the failure toggles to simulate misses.
type MockSessionStore struct {
	mu      sync.Mutex
	entries map[string]domain.SessionEntry

	FailSave   bool
	FailGet    bool
	FailDelete bool
}

// NewMockSessionStore creates a new MockSessionStore
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{entries: make(map[string]domain.SessionEntry)}
}

func (m *MockSessionStore) Save(ctx context.Context, entry *domain.SessionEntry) error {
	if m.FailSave {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.SessionID] = *entry
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.SessionEntry, error) {
	if m.FailGet {
		return nil, errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	if m.FailDelete {
		return errAdapterDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
	return nil
}

// Len reports the number of tracked sessions
func (m *MockSessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Has reports whether a session id is tracked
func (m *MockSessionStore) Has(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[sessionID]
	return ok
}
