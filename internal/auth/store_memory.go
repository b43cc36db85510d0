package auth

import (
	"context"
	"sync"
	"time"
)

type storedCode struct {
	hash      string
	expiresAt time.Time
}

// InMemoryCodeStore is a CodeStore for tests and Redis-less development.
type InMemoryCodeStore struct {
	mu       sync.Mutex
	codes    map[string]storedCode
	strikes  map[string]int
	refresh  map[string]storedCode // hash holds the user id
	now      func() time.Time
}

func NewInMemoryCodeStore() *InMemoryCodeStore {
	return &InMemoryCodeStore{
		codes:   map[string]storedCode{},
		strikes: map[string]int{},
		refresh: map[string]storedCode{},
		now:     time.Now,
	}
}

func (s *InMemoryCodeStore) SaveCode(_ context.Context, phone, hash string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[phone] = storedCode{hash: hash, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *InMemoryCodeStore) GetCode(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.codes[phone]
	if !ok || s.now().After(c.expiresAt) {
		delete(s.codes, phone)
		return "", ErrCodeNotFound
	}
	return c.hash, nil
}

func (s *InMemoryCodeStore) DeleteCode(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, phone)
	return nil
}

func (s *InMemoryCodeStore) IncrStrikes(_ context.Context, phone string, _ time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strikes[phone]++
	return s.strikes[phone], nil
}

func (s *InMemoryCodeStore) Strikes(_ context.Context, phone string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strikes[phone], nil
}

func (s *InMemoryCodeStore) ClearStrikes(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.strikes, phone)
	return nil
}

func (s *InMemoryCodeStore) SaveRefresh(_ context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh[token] = storedCode{hash: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *InMemoryCodeStore) TakeRefresh(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.refresh[token]
	delete(s.refresh, token)
	if !ok || s.now().After(c.expiresAt) {
		return "", ErrRefreshNotFound
	}
	return c.hash, nil
}
