package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type memoryStore struct {
	session *Session
	loadErr error
	saves   int
	clears  int
}

func (m *memoryStore) Load(ctx context.Context) (*Session, error) {
	return m.session, m.loadErr
}

func (m *memoryStore) Save(ctx context.Context, s *Session) error {
	copied := *s
	m.session = &copied
	m.saves++
	return nil
}

func (m *memoryStore) Clear(ctx context.Context) error {
	m.session = nil
	m.clears++
	return nil
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func TestManagerRehydrate(t *testing.T) {
	tests := []struct {
		name      string
		stored    *Session
		loadErr   error
		wantState State
	}{
		{
			name:      "no persisted session",
			stored:    nil,
			wantState: StateUnauthenticated,
		},
		{
			name:      "store failure treated as signed out",
			loadErr:   errors.New("disk gone"),
			wantState: StateUnauthenticated,
		},
		{
			name:      "empty token",
			stored:    &Session{IsAuthenticated: true},
			wantState: StateUnauthenticated,
		},
		{
			name:      "opaque token treated as live",
			stored:    &Session{Token: "opaque-token", TokenType: "bearer"},
			wantState: StateAuthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(&memoryStore{session: tt.stored, loadErr: tt.loadErr})
			assert.Equal(t, StateUnknown, m.State())

			got := m.Rehydrate(context.Background())
			assert.Equal(t, tt.wantState, got)
			assert.Equal(t, tt.wantState, m.State())
		})
	}
}

func TestManagerRehydrateExpiredJWT(t *testing.T) {
	stale := signedJWT(t, time.Now().Add(-time.Hour))
	m := NewManager(&memoryStore{session: &Session{Token: stale, TokenType: "bearer"}})

	assert.Equal(t, StateUnauthenticated, m.Rehydrate(context.Background()))
	assert.False(t, m.IsAuthenticated())
	assert.False(t, m.Current().HasToken())
}

func TestManagerRehydrateLiveJWT(t *testing.T) {
	live := signedJWT(t, time.Now().Add(time.Hour))
	m := NewManager(&memoryStore{session: &Session{Token: live, TokenType: "bearer"}})

	assert.Equal(t, StateAuthenticated, m.Rehydrate(context.Background()))
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, live, m.Current().Token)
	assert.True(t, m.Current().IsAuthenticated)
}

func TestManagerEstablishAndClear(t *testing.T) {
	store := &memoryStore{}
	m := NewManager(store)
	ctx := context.Background()

	assert.NoError(t, m.Establish(ctx, "fresh-token", ""))
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, DefaultTokenType, m.Current().TokenType)
	assert.Equal(t, 1, store.saves)

	assert.NoError(t, m.Clear(ctx))
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.False(t, m.Current().HasToken())
	assert.Equal(t, 1, store.clears)
}

func TestManagerCookieValue(t *testing.T) {
	m := NewManager(&memoryStore{})
	assert.NoError(t, m.Establish(context.Background(), "tok", "bearer"))

	decoded := DecodeCookie(m.CookieValue())
	assert.True(t, decoded.IsAuthenticated)
	assert.Equal(t, "tok", decoded.Token)
}
