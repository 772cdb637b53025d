package notification

import "testing"

func TestIncrementDecrement(t *testing.T) {
	counters := NewCounters()

	counters.Increment("orders")
	counters.Increment("orders")
	counters.Increment(KindVerification)

	snap := counters.Snapshot()
	if got := Count(snap, "orders"); got != 2 {
		t.Fatalf("expected orders count 2, got %d", got)
	}
	if got := Total(snap); got != 3 {
		t.Fatalf("expected total 3, got %d", got)
	}

	counters.Decrement("orders")
	if got := Count(counters.Snapshot(), "orders"); got != 1 {
		t.Fatalf("expected orders count 1 after decrement, got %d", got)
	}
}

func TestDecrementClampsAtZero(t *testing.T) {
	counters := NewCounters()

	counters.Decrement("orders")
	counters.Increment("orders")
	counters.Decrement("orders")
	counters.Decrement("orders")

	if got := Count(counters.Snapshot(), "orders"); got != 0 {
		t.Fatalf("expected clamp at zero, got %d", got)
	}
}

func TestReset(t *testing.T) {
	counters := NewCounters()

	counters.Increment("orders")
	counters.Increment("orders")
	counters.Reset("orders")

	snap := counters.Snapshot()
	if got := Count(snap, "orders"); got != 0 {
		t.Fatalf("expected zero after reset, got %d", got)
	}
	if got := Total(snap); got != 0 {
		t.Fatalf("expected empty totals, got %d", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	counters := NewCounters()
	counters.Increment("orders")

	snap := counters.Snapshot()
	snap["orders"] = 99

	if got := Count(counters.Snapshot(), "orders"); got != 1 {
		t.Fatalf("store mutated through snapshot: %d", got)
	}
}
