package routing

import "sync"

// Navigator is the slice of the navigation collaborator the guard consumes:
// a current-group query and a replace-route command. Nothing else.
type Navigator interface {
	CurrentGroup() Group
	Replace(group Group)
}

// MemoryNavigator tracks the current screen group in memory. It stands in
// for the navigation stack in tests and the dev harness.
type MemoryNavigator struct {
	mu       sync.Mutex
	current  Group
	replaces int
}

// NewMemoryNavigator builds a navigator positioned at start.
func NewMemoryNavigator(start Group) *MemoryNavigator {
	return &MemoryNavigator{current: start}
}

// CurrentGroup returns the active screen group.
func (n *MemoryNavigator) CurrentGroup() Group {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Replace swaps the active route, as a forced redirect does.
func (n *MemoryNavigator) Replace(group Group) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = group
	n.replaces++
}

// Visit records a user-initiated navigation to group.
func (n *MemoryNavigator) Visit(group Group) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = group
}

// Replaces counts forced redirects, for tests asserting the guard does not
// oscillate.
func (n *MemoryNavigator) Replaces() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.replaces
}
