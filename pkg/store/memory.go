package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps creatives in process memory. Used in development,
// tests, and single-shot CLI sessions.
type MemoryStore struct {
	mu        sync.RWMutex
	creatives map[string]*Creative
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{creatives: make(map[string]*Creative)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Creative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.creatives[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryStore) Put(ctx context.Context, c *Creative) error {
	if err := prepare(c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *c
	s.creatives[c.ID] = &cp
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*Creative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Creative, 0, len(s.creatives))
	for _, c := range s.creatives {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.creatives, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
