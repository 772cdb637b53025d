package identity

import (
	"context"
	"sync"
)

type memoryDirectory struct {
	mu      sync.RWMutex
	entries map[string]Identity
}

// NewMemoryDirectory builds an in-memory directory seeded with the given
// identities. Used in development builds and tests.
func NewMemoryDirectory(ids ...Identity) Directory {
	entries := make(map[string]Identity, len(ids))
	for _, id := range ids {
		entries[id.Phone] = id
	}
	return &memoryDirectory{entries: entries}
}

func (d *memoryDirectory) FindByPhone(_ context.Context, phone string) (Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.entries[phone]
	if !ok {
		return Identity{}, ErrNotRegistered
	}
	return id, nil
}

// SeedDemo returns the fixed demo membership used by development builds:
// one identity per role, grouped by phone prefix.
func SeedDemo() []Identity {
	return []Identity{
		{Phone: "9876543101", Name: "Ravi Patel", Role: RoleCustomer, Email: "ravi@example.com", Address: "14 MG Road", City: "Pune"},
		{Phone: "9876543201", Name: "Sunita Deshmukh", Role: RoleContractor, Email: "sunita@example.com", Address: "8 Station Road", City: "Nashik"},
		{Phone: "9876543301", Name: "Arjun Pawar", Role: RoleWorker, Email: "arjun@example.com", Address: "22 Shivaji Nagar", City: "Pune"},
		{Phone: "9876543401", Name: "Meena Joshi", Role: RoleShopkeeper, Email: "meena@example.com", Address: "5 Market Yard", City: "Satara"},
		{Phone: "9876543501", Name: "Vikram Shinde", Role: RoleDriver, Email: "vikram@example.com", Address: "31 Highway Colony", City: "Pune"},
		{Phone: "9876543601", Name: "Asha Kulkarni", Role: RoleAdmin, Email: "asha@example.com", Address: "2 Civil Lines", City: "Mumbai"},
	}
}
