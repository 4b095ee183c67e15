package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// State is the auth gate's position in its lifecycle.
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Manager owns the session lifecycle: rehydration on startup, establish
// on login/signup/SSO exchange, teardown on logout or 401. It is the
// only writer of session state; stores and the HTTP adapter read it.
type Manager struct {
	mu    sync.RWMutex
	store Store

	state   State
	current Session
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, state: StateUnknown}
}

// Rehydrate loads the persisted session and resolves Unknown into
// Authenticated or Unauthenticated. Safe to call more than once.
func (m *Manager) Rehydrate(ctx context.Context) State {
	m.mu.Lock()
	m.state = StateChecking
	m.mu.Unlock()

	loaded, err := m.store.Load(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil || loaded == nil || !loaded.HasToken() {
		m.state = StateUnauthenticated
		m.current = Session{}
		return m.state
	}

	if tokenExpired(loaded.Token) {
		m.state = StateUnauthenticated
		m.current = Session{}
		return m.state
	}

	m.current = *loaded
	m.current.IsAuthenticated = true
	m.state = StateAuthenticated
	return m.state
}

// Establish records a fresh credential after a successful signin,
// signup, or SSO token exchange and persists it.
func (m *Manager) Establish(ctx context.Context, token, tokenType string) error {
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	s := Session{IsAuthenticated: true, Token: token, TokenType: tokenType}

	m.mu.Lock()
	m.current = s
	m.state = StateAuthenticated
	m.mu.Unlock()

	return m.store.Save(ctx, &s)
}

// Clear tears the session down. Called on logout and on a 401 observed
// by the HTTP adapter.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.current = Session{}
	m.state = StateUnauthenticated
	m.mu.Unlock()

	return m.store.Clear(ctx)
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateAuthenticated && m.current.HasToken()
}

// CookieValue renders the current session for the cookie mirror.
func (m *Manager) CookieValue() string {
	return EncodeCookie(m.Current())
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification belongs to the backend. Opaque (non-JWT)
// tokens are treated as live and left to the backend to reject.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
