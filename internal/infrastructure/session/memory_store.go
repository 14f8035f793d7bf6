package session

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
)

// MemoryStore sesiones revocadas en memoria (un solo proceso, sin REDIS_ADDR).
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> expiración
	now     func() time.Time
}

var _ ports.SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryStore) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[sessionID] = now.Add(ttl)
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.revoked[sessionID]
	return ok && exp.After(s.now()), nil
}
