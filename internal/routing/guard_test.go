package routing

import (
	"context"
	"testing"

	"github.com/mistrimandi/mistri/internal/identity"
	"github.com/mistrimandi/mistri/internal/logging"
	"github.com/mistrimandi/mistri/internal/notification"
	"github.com/mistrimandi/mistri/internal/session"
)

func newGuardFixture(t *testing.T, start Group) (*session.Manager, *MemoryNavigator, *Guard) {
	t.Helper()
	logger := logging.Discard()
	sessions := session.NewManager(session.Deps{
		Store:     session.NewMemoryStore(),
		Directory: identity.NewMemoryDirectory(identity.SeedDemo()...),
		Issuer:    session.NewOTPIssuer(0, session.DevOTPCode),
		Notifier:  notification.NewLoggerNotifier(logger),
		Logger:    logger,
		DevLogin:  true,
	})
	sessions.Restore(context.Background())

	nav := NewMemoryNavigator(start)
	return sessions, nav, NewGuard(sessions, nav, logger)
}

func TestApplyRedirectsSignedOutUserOutOfApp(t *testing.T) {
	_, nav, guard := newGuardFixture(t, GroupApp)

	if !guard.Apply(context.Background()) {
		t.Fatalf("expected a redirect")
	}
	if nav.CurrentGroup() != GroupAuth {
		t.Fatalf("expected auth group, got %s", nav.CurrentGroup())
	}
	if nav.Replaces() != 1 {
		t.Fatalf("expected exactly one replace, got %d", nav.Replaces())
	}
}

func TestApplyDoesNotOscillate(t *testing.T) {
	_, nav, guard := newGuardFixture(t, GroupApp)
	ctx := context.Background()

	guard.Apply(ctx)
	// Unrelated re-renders re-run the guard with unchanged inputs.
	guard.Apply(ctx)
	guard.Apply(ctx)

	if nav.Replaces() != 1 {
		t.Fatalf("guard oscillated: %d replaces", nav.Replaces())
	}
	if nav.CurrentGroup() != GroupAuth {
		t.Fatalf("expected to settle on auth, got %s", nav.CurrentGroup())
	}
}

func TestBindReactsToLoginAndLogout(t *testing.T) {
	sessions, nav, guard := newGuardFixture(t, GroupAuth)
	ctx := context.Background()

	cancel := guard.Bind(ctx)
	defer cancel()

	if _, err := sessions.Login(ctx, "9876543101"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if nav.CurrentGroup() != GroupApp {
		t.Fatalf("expected redirect into app after login, got %s", nav.CurrentGroup())
	}

	if err := sessions.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if nav.CurrentGroup() != GroupAuth {
		t.Fatalf("expected redirect to auth after logout, got %s", nav.CurrentGroup())
	}
}

func TestApplyLoadingShowsNoRedirect(t *testing.T) {
	logger := logging.Discard()
	sessions := session.NewManager(session.Deps{
		Store:     session.NewMemoryStore(),
		Directory: identity.NewMemoryDirectory(),
		Issuer:    session.NewOTPIssuer(0, session.DevOTPCode),
		Notifier:  notification.NewLoggerNotifier(logger),
		Logger:    logger,
	})
	// No Restore yet: still loading.
	nav := NewMemoryNavigator(GroupApp)
	guard := NewGuard(sessions, nav, logger)

	if guard.Apply(context.Background()) {
		t.Fatalf("loading state must not redirect")
	}
	if nav.Replaces() != 0 {
		t.Fatalf("expected no replaces, got %d", nav.Replaces())
	}
}
