package middleware

import (
	"context"
	"sync"
	"time"
)

type storedResponse struct {
	resp      *CachedResponse
	expiresAt time.Time
}

// MemoryIdempotencyStore keeps idempotent responses in process memory.
type MemoryIdempotencyStore struct {
	mu       sync.RWMutex
	items    map[string]storedResponse
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewMemoryIdempotencyStore creates a store that sweeps expired entries every
// cleanupInterval.
func NewMemoryIdempotencyStore(cleanupInterval time.Duration) *MemoryIdempotencyStore {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	s := &MemoryIdempotencyStore{
		items:  make(map[string]storedResponse),
		stopCh: make(chan struct{}),
	}
	go s.startCleanup(cleanupInterval)
	return s
}

// Get retrieves a stored response.
func (s *MemoryIdempotencyStore) Get(_ context.Context, key string) (*CachedResponse, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok || time.Now().After(item.expiresAt) {
		return nil, false, nil
	}
	return item.resp, true, nil
}

// Set stores a response until ttl elapses.
func (s *MemoryIdempotencyStore) Set(_ context.Context, key string, resp *CachedResponse, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = storedResponse{resp: resp, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Stop ends the cleanup goroutine.
func (s *MemoryIdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *MemoryIdempotencyStore) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup removes expired entries.
func (s *MemoryIdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, item := range s.items {
		if now.After(item.expiresAt) {
			delete(s.items, key)
		}
	}
}
