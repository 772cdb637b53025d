package verification

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mistrimandi/mistri/internal/identity"
	"github.com/mistrimandi/mistri/internal/store"
)

// Entry is one pending worker identity submission awaiting admin review.
type Entry struct {
	ID          string        `json:"id"`
	Phone       string        `json:"phone"`
	Name        string        `json:"name"`
	Role        identity.Role `json:"role"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

// Snapshot is the queue state at one point in time.
type Snapshot struct {
	Entries map[string]Entry
}

func (s Snapshot) clone() Snapshot {
	next := Snapshot{Entries: make(map[string]Entry, len(s.Entries))}
	for k, e := range s.Entries {
		next.Entries[k] = e
	}
	return next
}

// Queue holds pending verification submissions for admin screens.
type Queue struct {
	state *store.Value[Snapshot]
	now   func() time.Time
}

// NewQueue builds an empty verification queue.
func NewQueue() *Queue {
	return &Queue{
		state: store.New(Snapshot{Entries: map[string]Entry{}}),
		now:   time.Now,
	}
}

// Submit enqueues a submission and returns the stored entry.
func (q *Queue) Submit(phone, name string, role identity.Role) Entry {
	entry := Entry{
		ID:          uuid.NewString(),
		Phone:       phone,
		Name:        name,
		Role:        role,
		SubmittedAt: q.now().UTC(),
	}
	q.state.Update(func(cur Snapshot) Snapshot {
		next := cur.clone()
		next.Entries[entry.ID] = entry
		return next
	})
	return entry
}

// Approve removes the entry with the given id, reporting whether it existed.
func (q *Queue) Approve(id string) (Entry, bool) {
	return q.take(id)
}

// Reject removes the entry with the given id, reporting whether it existed.
func (q *Queue) Reject(id string) (Entry, bool) {
	return q.take(id)
}

func (q *Queue) take(id string) (Entry, bool) {
	var (
		taken Entry
		found bool
	)
	q.state.Update(func(cur Snapshot) Snapshot {
		e, ok := cur.Entries[id]
		if !ok {
			return cur
		}
		taken, found = e, true
		next := cur.clone()
		delete(next.Entries, id)
		return next
	})
	return taken, found
}

// Snapshot returns the current queue state.
func (q *Queue) Snapshot() Snapshot {
	return q.state.Get()
}

// Subscribe registers fn for queue changes.
func (q *Queue) Subscribe(fn func(Snapshot)) func() {
	return q.state.Subscribe(fn)
}

// Pending lists entries oldest first.
func Pending(s Snapshot) []Entry {
	entries := make([]Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SubmittedAt.Equal(entries[j].SubmittedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].SubmittedAt.Before(entries[j].SubmittedAt)
	})
	return entries
}

// PendingCount is the badge count shown on the admin dashboard.
func PendingCount(s Snapshot) int {
	return len(s.Entries)
}
