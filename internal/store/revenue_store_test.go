package store

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func revenueHandler(hits *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"revenue":{"domain":"` + r.URL.Query().Get("domain") + `","annual_revenue":5000000,"currency":"USD","fiscal_year":2025}}`))
	})
}

func TestRevenueStoreFreshnessSkip(t *testing.T) {
	var hits atomic.Int64
	s := NewRevenueStore(newTestAPI(t, revenueHandler(&hits)), noopLogger{}, 5*time.Minute)
	ctx := context.Background()

	first := s.Fetch(ctx, "acme.com")
	assert.NotNil(t, first.Data)
	assert.Equal(t, int64(1), hits.Load())

	// Within the window the previous result is served without a request.
	second := s.Fetch(ctx, "acme.com")
	assert.NotNil(t, second.Data)
	assert.Equal(t, int64(1), hits.Load())
}

func TestRevenueStoreWindowExpiry(t *testing.T) {
	var hits atomic.Int64
	s := NewRevenueStore(newTestAPI(t, revenueHandler(&hits)), noopLogger{}, 30*time.Millisecond)
	ctx := context.Background()

	s.Fetch(ctx, "acme.com")
	time.Sleep(60 * time.Millisecond)
	s.Fetch(ctx, "acme.com")

	assert.Equal(t, int64(2), hits.Load())
}

func TestRevenueStoreDomainChangeRefetches(t *testing.T) {
	var hits atomic.Int64
	s := NewRevenueStore(newTestAPI(t, revenueHandler(&hits)), noopLogger{}, 5*time.Minute)
	ctx := context.Background()

	s.Fetch(ctx, "acme.com")
	snap := s.Fetch(ctx, "globex.com")

	assert.Equal(t, int64(2), hits.Load())
	assert.Equal(t, "globex.com", snap.Data.Domain)
}

func TestRevenueStoreClearForcesRefetch(t *testing.T) {
	var hits atomic.Int64
	s := NewRevenueStore(newTestAPI(t, revenueHandler(&hits)), noopLogger{}, 5*time.Minute)
	ctx := context.Background()

	s.Fetch(ctx, "acme.com")
	s.Clear()
	assert.Nil(t, s.Snapshot().Data)

	s.Fetch(ctx, "acme.com")
	assert.Equal(t, int64(2), hits.Load())
}

func TestRevenueStoreErrorNotCached(t *testing.T) {
	var hits atomic.Int64
	failFirst := true
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if failFirst {
			failFirst = false
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"message":"provider timeout"}`))
			return
		}
		w.Write([]byte(`{"revenue":{"domain":"acme.com","currency":"USD"}}`))
	})
	s := NewRevenueStore(newTestAPI(t, handler), noopLogger{}, 5*time.Minute)
	ctx := context.Background()

	snap := s.Fetch(ctx, "acme.com")
	assert.Equal(t, "provider timeout", snap.Err)

	// A failed fetch must not occupy the freshness window.
	snap = s.Fetch(ctx, "acme.com")
	assert.Empty(t, snap.Err)
	assert.NotNil(t, snap.Data)
	assert.Equal(t, int64(2), hits.Load())
}
