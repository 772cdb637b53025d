package session

import (
	"context"
	"errors"
	"testing"

	"github.com/mistrimandi/mistri/internal/identity"
	"github.com/mistrimandi/mistri/internal/logging"
	"github.com/mistrimandi/mistri/internal/notification"
)

func newTestManager(t *testing.T, store Store, devLogin bool) *Manager {
	t.Helper()
	logger := logging.Discard()
	return NewManager(Deps{
		Store:     store,
		Directory: identity.NewMemoryDirectory(identity.SeedDemo()...),
		Issuer:    NewOTPIssuer(0, DevOTPCode),
		Notifier:  notification.NewLoggerNotifier(logger),
		Logger:    logger,
		DevLogin:  devLogin,
	})
}

func TestStartsLoadingAndRestoreResolvesEmpty(t *testing.T) {
	mgr := newTestManager(t, NewMemoryStore(), false)

	if mgr.State() != StateLoading {
		t.Fatalf("expected loading before restore, got %v", mgr.State())
	}

	mgr.Restore(context.Background())

	if mgr.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated after empty restore, got %v", mgr.State())
	}
	if mgr.Current().Loading {
		t.Fatalf("loading flag must clear after restore")
	}
}

func TestLoginThenRestoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	mgr := newTestManager(t, store, true)
	mgr.Restore(ctx)

	id, err := mgr.Login(ctx, "9876543301")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.Role != identity.RoleWorker {
		t.Fatalf("expected worker role, got %s", id.Role)
	}
	if mgr.State() != StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", mgr.State())
	}
	if store.Saves != 1 {
		t.Fatalf("expected exactly one durable write, got %d", store.Saves)
	}

	// Simulated restart: a fresh manager over the same store.
	restarted := newTestManager(t, store, true)
	restarted.Restore(ctx)

	if restarted.State() != StateAuthenticated {
		t.Fatalf("expected restored session, got %v", restarted.State())
	}
	restored := restarted.Current().Identity
	if restored == nil || restored.Phone != id.Phone || restored.Role != id.Role {
		t.Fatalf("restored identity mismatch: %+v", restored)
	}
}

func TestDevLoginDisabled(t *testing.T) {
	store := NewMemoryStore()
	mgr := newTestManager(t, store, false)
	mgr.Restore(context.Background())

	if _, err := mgr.Login(context.Background(), "9876543301"); !errors.Is(err, ErrDevLoginDisabled) {
		t.Fatalf("expected ErrDevLoginDisabled, got %v", err)
	}
	if store.Saves != 0 {
		t.Fatalf("disabled login must not write, got %d saves", store.Saves)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	mgr := newTestManager(t, NewMemoryStore(), true)
	mgr.Restore(context.Background())

	if _, err := mgr.Login(context.Background(), "0000000000"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestSendOTPUnregisteredPhone(t *testing.T) {
	mgr := newTestManager(t, NewMemoryStore(), false)
	mgr.Restore(context.Background())

	err := mgr.SendOTP(context.Background(), "0000000000")
	if !errors.Is(err, identity.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestVerifyOTPWrongCodeNeverPersists(t *testing.T) {
	store := NewMemoryStore()
	mgr := newTestManager(t, store, false)
	ctx := context.Background()
	mgr.Restore(ctx)

	if err := mgr.SendOTP(ctx, "9876543101"); err != nil {
		t.Fatalf("send otp: %v", err)
	}

	if _, err := mgr.VerifyOTP(ctx, "9876543101", "000000"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
	if store.Saves != 0 {
		t.Fatalf("failed verification must not write, got %d saves", store.Saves)
	}
	if mgr.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated after failed verification, got %v", mgr.State())
	}
}

func TestVerifyOTPSuccess(t *testing.T) {
	store := NewMemoryStore()
	mgr := newTestManager(t, store, false)
	ctx := context.Background()
	mgr.Restore(ctx)

	if err := mgr.SendOTP(ctx, "9876543101"); err != nil {
		t.Fatalf("send otp: %v", err)
	}

	id, err := mgr.VerifyOTP(ctx, "9876543101", DevOTPCode)
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if id.Role != identity.RoleCustomer {
		t.Fatalf("expected customer role, got %s", id.Role)
	}
	if mgr.State() != StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", mgr.State())
	}
	if store.Saves != 1 {
		t.Fatalf("expected exactly one durable write, got %d", store.Saves)
	}
}

func TestVerifyOTPUnknownUser(t *testing.T) {
	mgr := newTestManager(t, NewMemoryStore(), false)
	mgr.Restore(context.Background())

	if _, err := mgr.VerifyOTP(context.Background(), "0000000000", DevOTPCode); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	store := NewMemoryStore()
	mgr := newTestManager(t, store, true)
	ctx := context.Background()
	mgr.Restore(ctx)

	if _, err := mgr.Login(ctx, "9876543301"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := mgr.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if mgr.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated after logout, got %v", mgr.State())
	}
	if store.Deletes != 1 {
		t.Fatalf("expected one delete, got %d", store.Deletes)
	}

	// Second logout while already signed out: no state change, no write.
	if err := mgr.Logout(ctx); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
	if store.Deletes != 1 {
		t.Fatalf("repeat logout must not touch storage, got %d deletes", store.Deletes)
	}
}

func TestRestoreDiscardsCorruptRecord(t *testing.T) {
	store := NewMemoryStore()
	store.Seed(identity.Identity{Phone: "9876543301", Name: "Arjun Pawar"}) // no role

	mgr := newTestManager(t, store, false)
	mgr.Restore(context.Background())

	if mgr.State() != StateUnauthenticated {
		t.Fatalf("corrupt record must force signed-out state, got %v", mgr.State())
	}
	if store.Deletes != 1 {
		t.Fatalf("expected corrupt record erased, got %d deletes", store.Deletes)
	}
}

func TestFailedPersistLeavesStateUntouched(t *testing.T) {
	store := NewMemoryStore()
	store.FailSave = errors.New("disk full")

	mgr := newTestManager(t, store, true)
	ctx := context.Background()
	mgr.Restore(ctx)

	if _, err := mgr.Login(ctx, "9876543301"); err == nil {
		t.Fatalf("expected persistence error")
	}
	if mgr.State() != StateUnauthenticated {
		t.Fatalf("failed write must not transition, got %v", mgr.State())
	}
}
