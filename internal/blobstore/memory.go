package blobstore

import (
	"context"
	"io"
)

// InMemoryStore is a test double that records every put.
type InMemoryStore struct {
	Blobs    map[string][]byte
	PutCount int
	FailWith error
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{Blobs: map[string][]byte{}}
}

func (s *InMemoryStore) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	if s.FailWith != nil {
		return "", s.FailWith
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.PutCount++
	s.Blobs[key] = data
	return "https://blobs.local/" + key, nil
}
