package notification

import "github.com/mistrimandi/mistri/internal/store"

// Counts maps a notification kind to its badge count. Snapshots are copies;
// mutating a returned map does not affect the store.
type Counts map[string]int

func (c Counts) clone() Counts {
	next := make(Counts, len(c))
	for k, n := range c {
		next[k] = n
	}
	return next
}

// Counters tracks per-kind badge counts. Counts never go negative; a
// decrement below zero clamps at zero.
type Counters struct {
	state *store.Value[Counts]
}

// NewCounters builds an empty counter set.
func NewCounters() *Counters {
	return &Counters{state: store.New(Counts{})}
}

// Increment bumps the count for kind by one.
func (c *Counters) Increment(kind string) {
	c.state.Update(func(cur Counts) Counts {
		next := cur.clone()
		next[kind]++
		return next
	})
}

// Decrement lowers the count for kind by one, clamping at zero.
func (c *Counters) Decrement(kind string) {
	c.state.Update(func(cur Counts) Counts {
		if cur[kind] <= 0 {
			return cur
		}
		next := cur.clone()
		next[kind]--
		if next[kind] == 0 {
			delete(next, kind)
		}
		return next
	})
}

// Reset clears the count for kind.
func (c *Counters) Reset(kind string) {
	c.state.Update(func(cur Counts) Counts {
		if _, ok := cur[kind]; !ok {
			return cur
		}
		next := cur.clone()
		delete(next, kind)
		return next
	})
}

// Snapshot returns the current counts.
func (c *Counters) Snapshot() Counts {
	return c.state.Get()
}

// Subscribe registers fn for counter changes.
func (c *Counters) Subscribe(fn func(Counts)) func() {
	return c.state.Subscribe(fn)
}

// Count returns the badge count for kind in the snapshot.
func Count(s Counts, kind string) int {
	return s[kind]
}

// Total sums every badge count in the snapshot.
func Total(s Counts) int {
	var n int
	for _, v := range s {
		n += v
	}
	return n
}
