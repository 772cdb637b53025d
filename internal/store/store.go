package store

import "sync"

// Value is a minimal observable container. It holds one state snapshot,
// installs replacements synchronously, and fans each new snapshot out to
// subscribers. Selectors are plain functions over the snapshot type; the
// container itself never derives anything.
type Value[T any] struct {
	mu     sync.Mutex
	state  T
	nextID int
	subs   map[int]func(T)
}

// New builds a container holding the initial snapshot.
func New[T any](initial T) *Value[T] {
	return &Value[T]{state: initial, subs: make(map[int]func(T))}
}

// Get returns the current snapshot.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Set installs a replacement snapshot and notifies subscribers.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.state = next
	fns := v.listeners()
	v.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// Update computes the replacement from the current snapshot under the lock,
// so no other mutation interleaves between read and install. Returns the
// installed snapshot.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	v.state = fn(v.state)
	next := v.state
	fns := v.listeners()
	v.mu.Unlock()

	for _, f := range fns {
		f(next)
	}
	return next
}

// Subscribe registers fn to receive every snapshot installed after this
// call. The returned function cancels the subscription.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}
}

// listeners snapshots the subscriber set; callers must hold v.mu. Callbacks
// run outside the lock so a subscriber may call back into the container.
func (v *Value[T]) listeners() []func(T) {
	fns := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	return fns
}
