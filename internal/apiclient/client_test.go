package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brandscope-be/internal/session"

	"github.com/stretchr/testify/assert"
)

type stubSessions struct {
	current session.Session
}

func (s *stubSessions) Current() session.Session { return s.current }

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestClient(t *testing.T, handler http.HandlerFunc, sess session.Session) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL, 5*time.Second, &stubSessions{current: sess}, noopLogger{})
	return c, srv
}

func TestDoAttachesAuthorization(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}, session.Session{IsAuthenticated: true, Token: "tok123", TokenType: "bearer"})

	res := c.Get(context.Background(), "/api/frontend/companies", nil)

	assert.True(t, res.OK())
	assert.Equal(t, "bearer tok123", gotAuth)
}

func TestDoSkipAuth(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, session.Session{IsAuthenticated: true, Token: "tok123", TokenType: "bearer"})

	res := c.Post(context.Background(), "/api/auth/signin", map[string]string{"email": "a@b.c"}, &RequestOptions{SkipAuth: true})

	assert.True(t, res.OK())
	assert.Empty(t, gotAuth)
}

func TestDoWithoutTokenGoesOutUnauthenticated(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, session.Session{})

	res := c.Get(context.Background(), "/api/frontend/data", nil)

	assert.True(t, res.OK())
	assert.Empty(t, gotAuth)
}

func TestDoNetworkFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond, &stubSessions{}, noopLogger{})

	res := c.Get(context.Background(), "/api/frontend/companies", nil)

	assert.False(t, res.OK())
	assert.Equal(t, 0, res.Status)
	assert.NotEmpty(t, res.Err)
	assert.Nil(t, res.Data)
}

func TestDoUnauthorizedRunsHook(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}, session.Session{IsAuthenticated: true, Token: "stale", TokenType: "bearer"})

	hookCalled := false
	c.OnUnauthorized(func(ctx context.Context) { hookCalled = true })

	res := c.Get(context.Background(), "/api/frontend/companies", nil)

	assert.True(t, hookCalled)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Equal(t, "Unauthorized", res.Err)
}

func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "message field",
			status: 400,
			body:   `{"message":"domain already tracked"}`,
			want:   "domain already tracked",
		},
		{
			name:   "validation detail array joined",
			status: 422,
			body:   `{"detail":[{"msg":"field required"},{"msg":"value is not a valid email"}]}`,
			want:   "field required, value is not a valid email",
		},
		{
			name:   "detail string",
			status: 404,
			body:   `{"detail":"company not found"}`,
			want:   "company not found",
		},
		{
			name:   "unparseable body",
			status: 500,
			body:   `<html>Internal Server Error</html>`,
			want:   "Request failed with status 500",
		},
		{
			name:   "empty object",
			status: 502,
			body:   `{}`,
			want:   "Request failed with status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}, session.Session{})

			res := c.Get(context.Background(), "/whatever", nil)

			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.want, res.Err)
		})
	}
}

func TestDecodeInto(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"companies":[{"brand_name":"Acme"}]}`))
	}, session.Session{})

	res := c.Get(context.Background(), "/api/frontend/companies", nil)
	assert.True(t, res.OK())

	var payload struct {
		Companies []struct {
			BrandName string `json:"brand_name"`
		} `json:"companies"`
	}
	assert.NoError(t, res.DecodeInto(&payload))
	assert.Len(t, payload.Companies, 1)
	assert.Equal(t, "Acme", payload.Companies[0].BrandName)
}
