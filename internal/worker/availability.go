package worker

import "github.com/mistrimandi/mistri/internal/store"

// Status is the worker's two-valued availability.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusWorking Status = "working"
)

// Store holds the availability flag. It is deliberately not persisted:
// every process start resets to waiting, matching observed app behavior.
type Store struct {
	state *store.Value[Status]
}

// NewStore builds an availability store starting at waiting.
func NewStore() *Store {
	return &Store{state: store.New(StatusWaiting)}
}

// Toggle flips between waiting and working and returns the new status.
func (s *Store) Toggle() Status {
	return s.state.Update(func(cur Status) Status {
		if cur == StatusWorking {
			return StatusWaiting
		}
		return StatusWorking
	})
}

// Status returns the current availability.
func (s *Store) Status() Status {
	return s.state.Get()
}

// Subscribe registers fn for availability changes.
func (s *Store) Subscribe(fn func(Status)) func() {
	return s.state.Subscribe(fn)
}
