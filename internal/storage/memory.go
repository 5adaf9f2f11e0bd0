package storage

import (
	"context"
	"fmt"
	"sync"

	"v3pricing/internal/model"
)

// MemoryStore keeps entities in process. Records are copied on the way in
// and out so callers never share slices or integers with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	tokens  map[string]model.Token
	pools   map[string]model.Pool
	bundle  *model.Bundle
	cursors map[string]model.Cursor
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens:  make(map[string]model.Token),
		pools:   make(map[string]model.Pool),
		cursors: make(map[string]model.Cursor),
	}
}

func (s *MemoryStore) Token(_ context.Context, id string) (model.Token, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[id]
	if !ok {
		return model.Token{}, false, nil
	}
	return token.Clone(), true, nil
}

func (s *MemoryStore) SaveToken(_ context.Context, token model.Token) error {
	s.mu.Lock()
	s.tokens[token.ID] = token.Clone()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Pool(_ context.Context, id string) (model.Pool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pool, ok := s.pools[id]
	if !ok {
		return model.Pool{}, false, nil
	}
	return pool.Clone(), true, nil
}

func (s *MemoryStore) SavePool(_ context.Context, pool model.Pool) error {
	s.mu.Lock()
	s.pools[pool.ID] = pool.Clone()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Bundle(_ context.Context) (model.Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bundle == nil {
		return model.NewBundle(), nil
	}
	return *s.bundle, nil
}

func (s *MemoryStore) SaveBundle(_ context.Context, bundle model.Bundle) error {
	bundle.ID = model.BundleID
	s.mu.Lock()
	s.bundle = &bundle
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Cursor(_ context.Context, name string) (model.Cursor, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cursor, ok := s.cursors[name]
	return cursor, ok, nil
}

func (s *MemoryStore) SaveCursor(_ context.Context, name string, cursor model.Cursor) error {
	s.mu.Lock()
	s.cursors[name] = cursor
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Commit(_ context.Context, changes model.ChangeSet) error {
	if changes.Cursor != nil && changes.CursorName == "" {
		return fmt.Errorf("state name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, token := range changes.Tokens {
		s.tokens[token.ID] = token.Clone()
	}
	for _, pool := range changes.Pools {
		s.pools[pool.ID] = pool.Clone()
	}
	if changes.Bundle != nil {
		bundle := *changes.Bundle
		bundle.ID = model.BundleID
		s.bundle = &bundle
	}
	if changes.Cursor != nil {
		s.cursors[changes.CursorName] = *changes.Cursor
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
