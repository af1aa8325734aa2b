package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore implements driven.SessionStore in process memory.
// It serves single-instance deployments and tests; entries are evicted by
// per-entry timers so an expired session reads as a miss, matching the
// Redis-backed store.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]sessionRecord
	ttl     time.Duration
	gen     uint64
	closed  bool
}

// sessionRecord pairs an entry with the timer armed for it. gen identifies
// the Save that armed the timer; generations are never reused.
type sessionRecord struct {
	entry domain.SessionEntry
	timer *time.Timer
	gen   uint64
}

// NewSessionStore creates a new in-memory SessionStore.
// ttl is the session lifetime, normally the refresh-token lifetime.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		entries: make(map[string]sessionRecord),
		ttl:     ttl,
	}
}

// Save stores the entry under its session id and resets the TTL
func (s *SessionStore) Save(ctx context.Context, entry *domain.SessionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrUnexpected
	}

	sid := entry.SessionID
	if rec, ok := s.entries[sid]; ok {
		// Stop may return false when the old timer has already fired and
		// its evict is waiting on the mutex; the generation check below
		// keeps that evict from touching the entry saved here.
		rec.timer.Stop()
	}

	s.gen++
	gen := s.gen
	s.entries[sid] = sessionRecord{
		entry: *entry,
		gen:   gen,
		timer: time.AfterFunc(s.ttl, func() {
			s.evict(sid, gen)
		}),
	}
	return nil
}

// Get retrieves the entry by session id
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.SessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	entry := rec.entry
	return &entry, nil
}

// Delete removes the entry. Deleting a missing key is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.entries[sessionID]; ok {
		rec.timer.Stop()
		delete(s.entries, sessionID)
	}
	return nil
}

// Close stops all eviction timers and rejects further saves
func (s *SessionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for _, rec := range s.entries {
		rec.timer.Stop()
	}
	clear(s.entries)
}

// evict removes the entry only if it still belongs to the generation that
// armed this timer. A mismatch means a later Save overwrote the entry after
// this timer fired; the newer entry keeps its full TTL.
func (s *SessionStore) evict(sessionID string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[sessionID]
	if !ok || rec.gen != gen {
		return
	}
	delete(s.entries, sessionID)
}
