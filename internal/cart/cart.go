package cart

import "github.com/mistrimandi/mistri/internal/store"

// Entry is one cart line, keyed by the listing identifier. ProductRef and
// ShopRef are opaque to the core; screens resolve them against the catalog.
type Entry struct {
	Key        string `json:"key"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	ProductRef string `json:"product_ref,omitempty"`
	ShopRef    string `json:"shop_ref,omitempty"`
}

// Snapshot is the cart state at one point in time. Mutations install a fresh
// copy, so a snapshot handed to a selector or subscriber never changes.
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

// Store holds the cart collection. An entry with quantity <= 0 never exists;
// such inputs are normalized to removal.
type Store struct {
	state *store.Value[Snapshot]
}

// NewStore builds an empty cart.
func NewStore() *Store {
	return &Store{state: store.New(Snapshot{Entries: map[string]Entry{}})}
}

// AddItem inserts the entry, or merges quantities when the key already
// exists. The unit price of an existing entry is left untouched.
func (s *Store) AddItem(e Entry) {
	if e.Quantity <= 0 {
		return
	}
	if e.UnitPrice < 0 {
		e.UnitPrice = 0
	}
	s.state.Update(func(cur Snapshot) Snapshot {
		next := cur.clone()
		if existing, ok := next.Entries[e.Key]; ok {
			existing.Quantity += e.Quantity
			next.Entries[e.Key] = existing
		} else {
			next.Entries[e.Key] = e
		}
		return next
	})
}

// UpdateQuantity sets the quantity for key, removing the entry when qty <= 0.
// No-op when the key is absent.
func (s *Store) UpdateQuantity(key string, qty int) {
	s.state.Update(func(cur Snapshot) Snapshot {
		if _, ok := cur.Entries[key]; !ok {
			return cur
		}
		next := cur.clone()
		if qty <= 0 {
			delete(next.Entries, key)
			return next
		}
		e := next.Entries[key]
		e.Quantity = qty
		next.Entries[key] = e
		return next
	})
}

// RemoveItem deletes the entry if present.
func (s *Store) RemoveItem(key string) {
	s.UpdateQuantity(key, 0)
}

// Clear empties the collection unconditionally.
func (s *Store) Clear() {
	s.state.Set(Snapshot{Entries: map[string]Entry{}})
}

// Snapshot returns the current cart state.
func (s *Store) Snapshot() Snapshot {
	return s.state.Get()
}

// Subscribe registers fn for every cart change; the returned function
// cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	return s.state.Subscribe(fn)
}

// Total is the order value in integer currency units.
func Total(s Snapshot) int64 {
	var sum int64
	for _, e := range s.Entries {
		sum += e.UnitPrice * int64(e.Quantity)
	}
	return sum
}

// ItemCount is the summed quantity across all entries.
func ItemCount(s Snapshot) int {
	var n int
	for _, e := range s.Entries {
		n += e.Quantity
	}
	return n
}
