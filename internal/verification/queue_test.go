package verification

import (
	"testing"
	"time"

	"github.com/mistrimandi/mistri/internal/identity"
)

func TestSubmitAndPendingCount(t *testing.T) {
	queue := NewQueue()

	first := queue.Submit("9876543301", "Arjun Pawar", identity.RoleWorker)
	second := queue.Submit("9876543302", "Kiran More", identity.RoleWorker)

	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", first.ID, second.ID)
	}

	snap := queue.Snapshot()
	if got := PendingCount(snap); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}
}

func TestPendingOrderedOldestFirst(t *testing.T) {
	queue := NewQueue()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	step := 0
	queue.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	a := queue.Submit("9876543301", "Arjun Pawar", identity.RoleWorker)
	b := queue.Submit("9876543302", "Kiran More", identity.RoleWorker)
	c := queue.Submit("9876543303", "Dinesh Gore", identity.RoleWorker)

	pending := Pending(queue.Snapshot())
	if len(pending) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(pending))
	}
	if pending[0].ID != a.ID || pending[1].ID != b.ID || pending[2].ID != c.ID {
		t.Fatalf("expected submission order preserved, got %v", pending)
	}
}

func TestApproveConsumesExactlyOne(t *testing.T) {
	queue := NewQueue()

	keep := queue.Submit("9876543301", "Arjun Pawar", identity.RoleWorker)
	gone := queue.Submit("9876543302", "Kiran More", identity.RoleWorker)

	taken, ok := queue.Approve(gone.ID)
	if !ok || taken.ID != gone.ID {
		t.Fatalf("expected to consume %s, got %+v ok=%v", gone.ID, taken, ok)
	}

	snap := queue.Snapshot()
	if got := PendingCount(snap); got != 1 {
		t.Fatalf("expected 1 pending, got %d", got)
	}
	if _, ok := snap.Entries[keep.ID]; !ok {
		t.Fatalf("unrelated entry was removed")
	}
}

func TestRejectUnknownID(t *testing.T) {
	queue := NewQueue()
	queue.Submit("9876543301", "Arjun Pawar", identity.RoleWorker)

	if _, ok := queue.Reject("nope"); ok {
		t.Fatalf("expected unknown id to report not found")
	}
	if got := PendingCount(queue.Snapshot()); got != 1 {
		t.Fatalf("expected queue untouched, got %d pending", got)
	}
}
