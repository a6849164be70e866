package auth

import (
	"context"
	"sync"
)

// TokenStore is the single persisted credential slot. At most one token is
// held: Set overwrites, Clear on an empty slot is a no-op. Every write must
// be durable before the call returns, so a restart always sees the latest
// value.
type TokenStore interface {
	// Get returns the stored token, or "" when the slot is empty.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryTokenStore keeps the token in memory only. It backs tests and runs
// without a client database; the session then lives as long as the process.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
