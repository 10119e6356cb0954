// Package session owns the client-side authentication lifecycle: hydration
// from persisted storage, login/register/logout against the auth endpoints,
// and the forced clear on authentication failure.
package session

import (
	"context"
	"sync"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/log"
	"github.com/taskzilla/taskzilla-cli/internal/notify"
	"github.com/taskzilla/taskzilla-cli/internal/storage"
)

// AuthAPI is the slice of the pipeline the session needs.
type AuthAPI interface {
	Login(ctx context.Context, in api.LoginInput) (*api.AuthResult, error)
	Register(ctx context.Context, in api.RegisterInput) (*api.AuthResult, error)
	Logout(ctx context.Context) error
}

// Snapshot is the durable projection of the session, written on every
// mutation and read once at hydration.
type Snapshot struct {
	User            *api.User `json:"user"`
	Token           string    `json:"token"`
	IsAuthenticated bool      `json:"isAuthenticated"`
}

// Store holds the live session. Safe for concurrent use.
//
// Invariant: IsAuthenticated() == (user present AND token present).
// isInitialized becomes true exactly once, after the first hydration attempt,
// and never reverts.
type Store struct {
	mu            sync.Mutex
	user          *api.User
	token         string
	isLoading     bool
	isInitialized bool

	storage  *storage.Store
	auth     AuthAPI
	notifier notify.Notifier
	logger   *log.Logger
}

// Config wires a session store.
type Config struct {
	Storage  *storage.Store
	Auth     AuthAPI
	Notifier notify.Notifier
	Logger   *log.Logger
}

// NewStore creates an uninitialized session store. Call Hydrate before
// reading authentication state.
func NewStore(cfg Config) *Store {
	if cfg.Notifier == nil {
		cfg.Notifier = notify.Silent{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.DefaultLogger()
	}
	return &Store{
		storage:  cfg.Storage,
		auth:     cfg.Auth,
		notifier: cfg.Notifier,
		logger:   cfg.Logger,
	}
}

// Hydrate loads the persisted session. Idempotent: the second and later
// calls are no-ops. isInitialized is true after the first call regardless of
// whether a session was found.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialized {
		return
	}
	defer func() { s.isInitialized = true }()

	var snap Snapshot
	if err := s.storage.Get(storage.KeyAuthSnapshot, &snap); err == nil {
		if snap.Token != "" && snap.User != nil {
			s.token = snap.Token
			s.user = snap.User
			return
		}
	}

	// Fall back to the individual records, which older client versions wrote
	// without a combined snapshot.
	var token string
	var user api.User
	if s.storage.Get(storage.KeyAuthToken, &token) != nil {
		return
	}
	if s.storage.Get(storage.KeyAuthUser, &user) != nil {
		return
	}
	if token != "" {
		s.token = token
		s.user = &user
	}
}

// Login authenticates and persists the session.
// Validation failures come back as normalized errors for the caller to
// render; the pipeline already notified for every other failure kind.
func (s *Store) Login(ctx context.Context, in api.LoginInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	s.setLoading(true)
	result, err := s.auth.Login(ctx, in)
	if err != nil {
		s.setLoading(false)
		return err
	}

	s.mu.Lock()
	s.user = &result.User
	s.token = result.Token
	s.isLoading = false
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.Success("Welcome back!")
	return nil
}

// Register creates an account. It intentionally does not authenticate: the
// user logs in explicitly afterwards.
func (s *Store) Register(ctx context.Context, in api.RegisterInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	s.setLoading(true)
	_, err := s.auth.Register(ctx, in)
	s.setLoading(false)
	if err != nil {
		return err
	}

	s.notifier.Success("Account created! Please login.")
	return nil
}

// Logout notifies the server best-effort and always clears local state.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		// A failed remote logout never blocks the local one.
		s.logger.WithError(err).Warn("remote logout failed")
	}

	s.clear()
	s.notifier.Success("Logged out successfully")
}

// Invalidate force-clears the session. Registered as the pipeline's
// authentication-failure hook; idempotent so any number of concurrent 401s
// resolve to a single cleared state.
func (s *Store) Invalidate() {
	s.clear()
}

// SetUser replaces the profile copy and persists it.
func (s *Store) SetUser(user *api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	if user != nil {
		s.persistLocked()
	}
}

// Token returns the current bearer token; empty when anonymous.
// Implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the authenticated user, or nil.
func (s *Store) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether both user and token are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

// IsLoading reports whether a login or register call is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// IsInitialized reports whether hydration has run.
func (s *Store) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isInitialized
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
}

// persistLocked writes the three persisted records. Callers hold s.mu.
func (s *Store) persistLocked() {
	if err := s.storage.Set(storage.KeyAuthToken, s.token); err != nil {
		s.logger.WithError(err).Warn("persist token failed")
	}
	if err := s.storage.Set(storage.KeyAuthUser, s.user); err != nil {
		s.logger.WithError(err).Warn("persist user failed")
	}
	snap := Snapshot{User: s.user, Token: s.token, IsAuthenticated: s.user != nil && s.token != ""}
	if err := s.storage.Set(storage.KeyAuthSnapshot, snap); err != nil {
		s.logger.WithError(err).Warn("persist session snapshot failed")
	}
}

func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.isLoading = false

	for _, key := range []string{storage.KeyAuthToken, storage.KeyAuthUser, storage.KeyAuthSnapshot} {
		if err := s.storage.Delete(key); err != nil {
			s.logger.WithError(err).Warn("clear persisted session failed", "key", key)
		}
	}
}
