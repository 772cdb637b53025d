package session

import (
	"context"
	"sync"

	"github.com/mistrimandi/mistri/internal/identity"
)

// Store persists the single session record. Save replaces the record whole
// and must be atomic from a concurrent reader's perspective: a reader sees
// either the prior record or the new one, never a torn write.
type Store interface {
	// Load reads the persisted record. found is false when no record exists;
	// err is reserved for storage faults.
	Load(ctx context.Context) (rec identity.Identity, found bool, err error)
	Save(ctx context.Context, rec identity.Identity) error
	Delete(ctx context.Context) error
}

// MemoryStore keeps the record in memory. Used in tests.
type MemoryStore struct {
	mu     sync.Mutex
	rec    identity.Identity
	exists bool

	// Saves and Deletes count durable writes so tests can assert on them.
	Saves   int
	Deletes int

	// FailSave, when set, is returned by Save without touching the record.
	FailSave error
}

// NewMemoryStore builds an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (identity.Identity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exists {
		return identity.Identity{}, false, nil
	}
	return s.rec, true, nil
}

func (s *MemoryStore) Save(_ context.Context, rec identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	s.rec = rec
	s.exists = true
	s.Saves++
	return nil
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = identity.Identity{}
	s.exists = false
	s.Deletes++
	return nil
}

// Seed installs a record directly, bypassing Save accounting. Tests use it
// to simulate a previous process run, including corrupt records.
func (s *MemoryStore) Seed(rec identity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	s.exists = true
}
