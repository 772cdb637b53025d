package wallet

import "github.com/mistrimandi/mistri/internal/store"

// Snapshot is the wallet projection shown on dashboards. Amounts are integer
// currency units. Held covers funds parked in escrow by the payment
// collaborator; the arithmetic behind these figures lives outside this core.
type Snapshot struct {
	Balance int64 `json:"balance"`
	Held    int64 `json:"held"`
	Earned  int64 `json:"earned"`
	Spent   int64 `json:"spent"`
}

// Store holds the wallet projection. The client core only reads it; Replace
// exists for the external payment collaborator to install fresh figures.
type Store struct {
	state *store.Value[Snapshot]
}

// NewStore builds a zeroed wallet projection.
func NewStore() *Store {
	return &Store{state: store.New(Snapshot{})}
}

// Snapshot returns the current projection.
func (s *Store) Snapshot() Snapshot {
	return s.state.Get()
}

// Replace installs a full projection. Reserved for the payment collaborator;
// screens never call this.
func (s *Store) Replace(next Snapshot) {
	s.state.Set(next)
}

// Subscribe registers fn for projection changes.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	return s.state.Subscribe(fn)
}
