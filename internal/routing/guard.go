package routing

import (
	"context"
	"log/slog"

	"github.com/mistrimandi/mistri/internal/logging"
	"github.com/mistrimandi/mistri/internal/session"
)

// Guard applies the decision table against the live session and navigator.
// The table itself lives in Decide; Guard only carries the collaborators and
// the effect plumbing.
type Guard struct {
	sessions *session.Manager
	nav      Navigator
	logger   *slog.Logger
}

// NewGuard builds a guard over the given session manager and navigator.
func NewGuard(sessions *session.Manager, nav Navigator, logger *slog.Logger) *Guard {
	return &Guard{
		sessions: sessions,
		nav:      nav,
		logger:   logging.Component(logger, "routing"),
	}
}

// Apply evaluates the rule table once and carries out its effects. Returns
// whether a redirect was issued. Safe to call on every re-render: with
// unchanged inputs the decision is a no-op.
func (g *Guard) Apply(ctx context.Context) bool {
	current := g.nav.CurrentGroup()
	sess := g.sessions.Current()
	d := Decide(sess, current)

	if d.ForceLogout {
		if err := g.sessions.Logout(ctx); err != nil {
			g.logger.Warn("forced logout failed", "error", err)
		}
	}

	if d.Redirect && current != d.Target {
		g.logger.Info("redirect", "from", string(current), "to", string(d.Target))
		g.nav.Replace(d.Target)
		return true
	}
	return false
}

// Bind subscribes the guard to session changes so every transition is
// re-evaluated. Returns the unsubscribe function.
func (g *Guard) Bind(ctx context.Context) func() {
	cancel := g.sessions.Subscribe(func(session.Session) {
		g.Apply(ctx)
	})
	g.Apply(ctx)
	return cancel
}
