package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Pesokrava/storefront/internal/domain"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store is an in-process domain.KeyValueStore, used when Redis is not configured and in tests
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the value stored under key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || (!e.expiresAt.IsZero() && s.now().After(e.expiresAt)) {
		return nil, domain.ErrNotFound
	}
	return slices.Clone(e.value), nil
}

// Set stores value under key
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: slices.Clone(value)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[key] = e
	return nil
}
