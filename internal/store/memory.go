package store

import (
	"context"
	"sync"

	"github.com/dgallion1/docstruct/internal/doctree"
)

// MemoryStore is a thread-safe in-memory Store, used when no external draft
// store is configured and in tests. Snapshots are cloned on both sides of
// the boundary so callers cannot alias stored state.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[string]*doctree.DocumentState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]*doctree.DocumentState)}
}

func (m *MemoryStore) Get(_ context.Context, draftID string) (*doctree.DocumentState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.drafts[draftID]
	if !ok {
		return nil, nil
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Put(_ context.Context, draftID string, state *doctree.DocumentState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[draftID] = state.Clone()
	return nil
}
