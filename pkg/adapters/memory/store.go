package memory

import (
	"context"
	"sync"

	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
)

// Store implements ports.Store in memory.
// Safe for concurrent use.
type Store struct {
	data map[domain.Kind][]rune
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[domain.Kind][]rune),
	}
}

// Save keeps a copy of items, so later changes by the caller do not leak in.
func (s *Store) Save(ctx context.Context, kind domain.Kind, items []rune) error {
	if err := ports.CheckKind(kind); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[kind] = append([]rune(nil), items...)
	return nil
}

// Load returns a copy of the saved items.
func (s *Store) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	if err := ports.CheckKind(kind); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]rune{}, s.data[kind]...), nil
}

// Delete removes the saved items.
func (s *Store) Delete(ctx context.Context, kind domain.Kind) error {
	if err := ports.CheckKind(kind); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, kind)
	return nil
}
