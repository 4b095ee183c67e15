package store

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/session"
)

type stubSessions struct{}

func (stubSessions) Current() session.Session {
	return session.Session{IsAuthenticated: true, Token: "test-token", TokenType: "bearer"}
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestAPI(t *testing.T, handler http.Handler) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, 5*time.Second, stubSessions{}, noopLogger{})
}
