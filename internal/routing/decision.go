package routing

import (
	"github.com/mistrimandi/mistri/internal/session"
)

// Group identifies which screen group the navigation stack currently shows.
type Group string

const (
	// GroupAuth is the login/OTP screen group.
	GroupAuth Group = "auth"
	// GroupApp is the role dashboard screen group.
	GroupApp Group = "app"
	// GroupOther covers screens outside both groups (splash, legal, deep links).
	GroupOther Group = "other"
)

// Valid reports whether g is a known screen group.
func (g Group) Valid() bool {
	switch g {
	case GroupAuth, GroupApp, GroupOther:
		return true
	}
	return false
}

// Decision is the guard's verdict for one (session, group) pair.
type Decision struct {
	// Redirect asks the navigator to replace the active route with Target.
	Redirect bool
	Target   Group

	// ForceLogout is set when an authenticated session carries a corrupt
	// identity; the session must be ended before any dashboard renders.
	ForceLogout bool
}

// Decide is the guard rule table. It is pure: equal inputs always produce
// equal decisions, so re-running it on unrelated re-renders cannot cause
// redirect loops.
func Decide(sess session.Session, current Group) Decision {
	switch sess.State() {
	case session.StateLoading:
		// Render the blocking loading screen; never redirect mid-restore.
		return Decision{}

	case session.StateUnauthenticated:
		if current == GroupApp {
			return Decision{Redirect: true, Target: GroupAuth}
		}
		return Decision{}

	case session.StateAuthenticated:
		if sess.Identity == nil || !sess.Identity.Role.Valid() {
			// Corrupt session: never render a dashboard for an unknown role.
			return Decision{
				Redirect:    current != GroupAuth,
				Target:      GroupAuth,
				ForceLogout: true,
			}
		}
		if current == GroupAuth {
			return Decision{Redirect: true, Target: GroupApp}
		}
		return Decision{}
	}
	return Decision{}
}
