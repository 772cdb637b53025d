package session

import "github.com/mistrimandi/mistri/internal/identity"

// State is the session lifecycle position.
type State int

const (
	// StateLoading holds until persisted storage has been consulted once.
	StateLoading State = iota
	// StateUnauthenticated carries no identity.
	StateUnauthenticated
	// StateAuthenticated carries a fully populated identity.
	StateAuthenticated
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Session wraps the optional authenticated identity plus the loading flag.
// Loading starts true and drops once restore has consulted storage,
// regardless of whether an identity was found.
type Session struct {
	Identity *identity.Identity
	Loading  bool
}

// State derives the lifecycle position from the wrapper.
func (s Session) State() State {
	switch {
	case s.Loading:
		return StateLoading
	case s.Identity != nil:
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}
