package storage

import (
	"context"
	"sync"
)

// Backend loads the whole store and persists the collections a mutation
// touched. The file backend rewrites its single document regardless of which
// collections changed; the sheets backend rewrites one tab per collection.
type Backend interface {
	Load(ctx context.Context) (*Snapshot, error)
	Persist(ctx context.Context, snap *Snapshot, cols ...Collection) error
}

// Store serializes access to the snapshot. This is a low-traffic single
// tenant admin tool: one writer at a time is all the isolation provided, and
// a failed persist intentionally leaves the in-memory state ahead of the
// durable one rather than rolling back.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) view(ctx context.Context, fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}
	return fn(snap)
}

// update runs fn against the loaded snapshot and persists the collections fn
// reports as touched. When fn errors nothing is persisted.
func (s *Store) update(ctx context.Context, fn func(*Snapshot) ([]Collection, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}

	cols, err := fn(snap)
	if err != nil {
		return err
	}
	return s.backend.Persist(ctx, snap, cols...)
}
