// Package session persists the authenticated identity and token and owns the
// sign-in/sign-up/sign-out/refresh lifecycle.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/log"
)

// Storage entries, mirroring the two keys the backend's web client uses.
const (
	tokenFile   = "token"
	profileFile = "profile.json"
)

var (
	// ErrNoToken means a successful auth response carried no token. This is a
	// hard failure, distinct from credential rejection.
	ErrNoToken = errors.New("session: no token returned from backend")

	// ErrLoginRequired means the account was created but the backend wants a
	// separate login.
	ErrLoginRequired = errors.New("session: account created, please log in")
)

// State is the three-valued session state. Loading lasts until Restore has
// run; guards must not make redirect decisions before then.
type State int

const (
	StateLoading State = iota
	StateAnonymous
	StateActive
)

// Session is the authenticated identity held for the current user.
type Session struct {
	UserID        int64    `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Roles         []string `json:"roles"`
	MonthStartDay int      `json:"monthStartDay"`
	Token         string   `json:"-"`
}

// Store keeps the session in memory and in two files under dir. All durable
// writes happen before the in-memory update, so a crash between the two never
// leaves memory ahead of storage.
type Store struct {
	dir string

	mu      sync.RWMutex
	state   State
	session Session

	logger *slog.Logger
}

// NewStore creates a store rooted at dir. The store starts in StateLoading;
// call Restore before consulting it.
func NewStore(dir string) *Store {
	return &Store{dir: dir, state: StateLoading, logger: log.With("session")}
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns the active session, or ok=false when anonymous or loading.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.state == StateActive
}

// Restore reads the persisted token and profile. The session becomes active
// only if both entries exist and the profile parses as JSON; the literal
// string "undefined" or malformed JSON clears storage and leaves the store
// anonymous. Runs once at process start.
func (s *Store) Restore() {
	token, terr := os.ReadFile(filepath.Join(s.dir, tokenFile))
	profile, perr := os.ReadFile(filepath.Join(s.dir, profileFile))

	if terr != nil || perr != nil || len(token) == 0 {
		s.clear()
		return
	}

	raw := string(profile)
	if raw == "undefined" || raw == "" {
		s.clear()
		return
	}

	var sess Session
	if err := json.Unmarshal(profile, &sess); err != nil {
		s.logger.Warn("discarding malformed persisted profile", "err", err)
		s.clear()
		return
	}

	sess.Token = string(token)
	s.mu.Lock()
	s.session = sess
	s.state = StateActive
	s.mu.Unlock()
}

// SignIn authenticates against the backend. On success the new identity is
// persisted and activated. On any failure the previous session state is left
// untouched.
func (s *Store) SignIn(ctx context.Context, c *api.Client, email, password string) (Session, error) {
	res, err := c.SignIn(ctx, api.SignInRequest{Email: email, Password: password})
	if err != nil {
		return Session{}, err
	}
	if res.Token == "" {
		return Session{}, ErrNoToken
	}
	return s.activate(res, res.MonthStartDay)
}

// SignUp registers a new account. If the backend returns a token this behaves
// like SignIn (with MonthStartDay defaulted to 1); otherwise it returns
// ErrLoginRequired and the caller routes to the login screen.
func (s *Store) SignUp(ctx context.Context, c *api.Client, username, email, password string) (Session, error) {
	res, err := c.SignUp(ctx, api.SignUpRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return Session{}, err
	}
	if res.Token == "" {
		return Session{}, ErrLoginRequired
	}
	return s.activate(res, 1)
}

func (s *Store) activate(res api.AuthResponse, monthStartDay int) (Session, error) {
	if monthStartDay < 1 || monthStartDay > 28 {
		monthStartDay = 1
	}
	sess := Session{
		UserID:        res.ID,
		Username:      res.Username,
		Email:         res.Email,
		Roles:         res.Roles,
		MonthStartDay: monthStartDay,
		Token:         res.Token,
	}
	if err := s.persist(sess); err != nil {
		return Session{}, err
	}
	s.mu.Lock()
	s.session = sess
	s.state = StateActive
	s.mu.Unlock()
	return sess, nil
}

// SignOut clears the persisted and in-memory session. Calling it while
// already signed out is a no-op.
func (s *Store) SignOut() {
	s.clear()
}

// Clear is the session-expiry hook for the API client: same effect as
// SignOut, invoked when any request comes back 401.
func (s *Store) Clear() {
	s.clear()
}

// Refresh re-fetches the profile and overwrites the persisted and in-memory
// copy. Failures are logged, never surfaced, and do not clear the session.
func (s *Store) Refresh(ctx context.Context, c *api.Client) {
	s.mu.RLock()
	token := s.session.Token
	active := s.state == StateActive
	s.mu.RUnlock()
	if !active {
		return
	}

	p, err := c.GetProfile(ctx)
	if err != nil {
		s.logger.Warn("profile refresh failed", "err", err)
		return
	}

	sess := Session{
		UserID:        p.ID,
		Username:      p.Username,
		Email:         p.Email,
		Roles:         p.Roles,
		MonthStartDay: p.MonthStartDay,
		Token:         token,
	}
	if sess.MonthStartDay < 1 || sess.MonthStartDay > 28 {
		sess.MonthStartDay = 1
	}

	// A sign-out (or the 401 hook) may have cleared the session while the
	// profile fetch was in flight; persisting now would resurrect it. The
	// re-check and the persist happen under the same lock clear holds.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return
	}
	if err := s.persist(sess); err != nil {
		s.logger.Warn("profile refresh persist failed", "err", err)
		return
	}
	s.session = sess
}

// UpdateMonthStartDay pushes a new period start day to the backend and then
// refreshes the local profile copy.
func (s *Store) UpdateMonthStartDay(ctx context.Context, c *api.Client, day int) error {
	if day < 1 || day > 28 {
		return fmt.Errorf("session: month start day %d out of range 1-28", day)
	}
	if err := c.UpdateMonthStartDay(ctx, day); err != nil {
		return err
	}
	s.Refresh(ctx, c)
	return nil
}

// persist writes the token entry first, then the profile entry.
func (s *Store) persist(sess Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("session: creating state dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(sess.Token), 0o600); err != nil {
		return fmt.Errorf("session: writing token: %w", err)
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: encoding profile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, profileFile), data, 0o600); err != nil {
		return fmt.Errorf("session: writing profile: %w", err)
	}
	return nil
}

// clear removes storage before resetting memory, mirroring persist's
// ordering. The lock spans both steps so a concurrent refresh cannot
// recreate the files between the removal and the memory reset.
func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(filepath.Join(s.dir, tokenFile))
	_ = os.Remove(filepath.Join(s.dir, profileFile))
	s.session = Session{}
	s.state = StateAnonymous
}
