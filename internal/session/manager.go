package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mistrimandi/mistri/internal/identity"
	"github.com/mistrimandi/mistri/internal/logging"
	"github.com/mistrimandi/mistri/internal/notification"
	"github.com/mistrimandi/mistri/internal/store"
)

// Deps aggregates the collaborators a Manager needs.
type Deps struct {
	Store     Store
	Directory identity.Directory
	Issuer    *OTPIssuer
	Notifier  notification.Notifier
	Logger    *slog.Logger

	// SendLatency simulates network delay on the OTP paths. Zero disables it.
	SendLatency time.Duration

	// DevLogin enables the OTP-skipping Login path. Leave off outside
	// development builds.
	DevLogin bool
}

// Manager owns the authenticated identity. It is the only writer of the
// persisted session record; every state-changing operation performs exactly
// one durable write or delete, and a failed write leaves both the record and
// the in-memory state untouched.
type Manager struct {
	mu sync.Mutex // serializes state-changing operations

	state       *store.Value[Session]
	store       Store
	directory   identity.Directory
	issuer      *OTPIssuer
	notifier    notification.Notifier
	logger      *slog.Logger
	sendLatency time.Duration
	devLogin    bool
}

// NewManager builds a manager in the loading state. Call Restore once at
// process start to resolve it.
func NewManager(d Deps) *Manager {
	return &Manager{
		state:       store.New(Session{Loading: true}),
		store:       d.Store,
		directory:   d.Directory,
		issuer:      d.Issuer,
		notifier:    d.Notifier,
		logger:      logging.Component(d.Logger, "session"),
		sendLatency: d.SendLatency,
		devLogin:    d.DevLogin,
	}
}

// Current returns the session snapshot.
func (m *Manager) Current() Session {
	return m.state.Get()
}

// State returns the lifecycle position.
func (m *Manager) State() State {
	return m.state.Get().State()
}

// Subscribe registers fn for session changes; the returned function cancels
// the subscription.
func (m *Manager) Subscribe(fn func(Session)) func() {
	return m.state.Subscribe(fn)
}

// Restore consults persisted storage exactly once and resolves the loading
// state. It never fails outward: storage faults and malformed records both
// land in the unauthenticated state. Malformed records are deleted best
// effort so the next start does not trip over them again.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, found, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Warn("session restore failed, treating as signed out", "error", err)
		m.state.Set(Session{})
		return
	}
	if !found {
		m.state.Set(Session{})
		return
	}
	if err := rec.Validate(); err != nil {
		m.logger.Warn("discarding corrupt session record", "error", err)
		if err := m.store.Delete(ctx); err != nil {
			m.logger.Warn("delete corrupt session record", "error", err)
		}
		m.state.Set(Session{})
		return
	}

	m.logger.Info("session restored", "phone", rec.Phone, "role", string(rec.Role))
	m.state.Set(Session{Identity: &rec})
}

// SendOTP issues a one-time code for a registered phone and hands it to the
// notifier for delivery. No session state changes on success.
func (m *Manager) SendOTP(ctx context.Context, phone string) error {
	if _, err := m.directory.FindByPhone(ctx, phone); err != nil {
		return err
	}

	if err := m.simulateLatency(ctx); err != nil {
		return err
	}

	code, err := m.issuer.Issue(phone)
	if err != nil {
		return fmt.Errorf("issue otp: %w", err)
	}

	msg := notification.Message{
		Kind:        notification.KindOTPCode,
		Destination: phone,
		Body:        fmt.Sprintf("Your verification code is %s", code),
	}
	if err := m.notifier.Send(ctx, msg); err != nil {
		m.logger.Warn("otp delivery failed", "phone", phone, "error", err)
	}
	return nil
}

// VerifyOTP checks the code for phone and, on success, persists the matched
// identity and transitions to authenticated.
func (m *Manager) VerifyOTP(ctx context.Context, phone, code string) (identity.Identity, error) {
	id, err := m.directory.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, identity.ErrNotRegistered) {
			return identity.Identity{}, ErrUnknownUser
		}
		return identity.Identity{}, err
	}

	if err := m.simulateLatency(ctx); err != nil {
		return identity.Identity{}, err
	}

	if err := m.issuer.Verify(phone, code); err != nil {
		return identity.Identity{}, err
	}

	return id, m.establish(ctx, id)
}

// Login is the OTP-skipping authentication path for development and demo
// role switching. It is rejected outright unless the dev login flag is on.
func (m *Manager) Login(ctx context.Context, phone string) (identity.Identity, error) {
	if !m.devLogin {
		return identity.Identity{}, ErrDevLoginDisabled
	}

	id, err := m.directory.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, identity.ErrNotRegistered) {
			return identity.Identity{}, ErrUnknownUser
		}
		return identity.Identity{}, err
	}

	return id, m.establish(ctx, id)
}

// Logout erases the persisted record and returns to unauthenticated. Calling
// it while already signed out performs no durable write.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.state.Get()
	if cur.Identity == nil && !cur.Loading {
		return nil
	}

	if err := m.store.Delete(ctx); err != nil {
		return fmt.Errorf("erase session record: %w", err)
	}

	m.logger.Info("session ended")
	m.state.Set(Session{})
	return nil
}

// establish persists the identity and transitions to authenticated. A failed
// write leaves the prior state in place.
func (m *Manager) establish(ctx context.Context, id identity.Identity) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("refusing incomplete identity: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(ctx, id); err != nil {
		return fmt.Errorf("persist session record: %w", err)
	}

	m.logger.Info("session established", "phone", id.Phone, "role", string(id.Role))
	m.state.Set(Session{Identity: &id})
	return nil
}

func (m *Manager) simulateLatency(ctx context.Context) error {
	if m.sendLatency <= 0 {
		return nil
	}
	select {
	case <-time.After(m.sendLatency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
