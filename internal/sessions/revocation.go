// Package sessions tracks signed-out tokens so they stop authenticating
// before they expire.
package sessions

import (
	"context"
	"sync"
	"time"
)

// RevocationStore records revoked token ids (the jti claim). An entry only
// needs to live until the token would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// MemoryStore keeps revocations in process. Used when no Redis is configured,
// so sign-outs do not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryStore) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.entries {
		if !exp.After(now) {
			delete(s.entries, id)
		}
	}
	if expiresAt.After(now) {
		s.entries[jti] = expiresAt
	}
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.entries[jti]
	return ok && exp.After(s.now()), nil
}

// Count returns the number of tracked revocations, expired ones included
// until the next Revoke sweeps them.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
