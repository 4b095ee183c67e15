package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"brandscope-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func socialHandler(t *testing.T, failing map[entity.Platform]bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Brand    string `json:"brand"`
			Platform string `json:"platform"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if failing[entity.Platform(req.Platform)] {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(fmt.Sprintf(`{"message":"%s scraper unavailable"}`, req.Platform)))
			return
		}

		followers := 1000.0
		resp := map[string]interface{}{
			"data": entity.SocialPlatformData{
				Handle:    "@" + req.Brand,
				Followers: &followers,
			},
		}
		json.NewEncoder(w).Encode(resp)
	})
}

func TestSocialStoreFetchAll(t *testing.T) {
	s := NewSocialStore(newTestAPI(t, socialHandler(t, nil)), noopLogger{})

	snap := s.FetchAll(context.Background(), "acme")

	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.Pending)
	assert.Empty(t, snap.Errors)
	assert.Len(t, snap.Data, len(entity.AllPlatforms))
	for _, p := range entity.AllPlatforms {
		assert.Equal(t, p, snap.Data[p].Platform, "platform field is stamped from the request key")
	}
}

func TestSocialStorePlatformFailureIsIsolated(t *testing.T) {
	failing := map[entity.Platform]bool{entity.PlatformTwitter: true}
	s := NewSocialStore(newTestAPI(t, socialHandler(t, failing)), noopLogger{})

	snap := s.FetchAll(context.Background(), "acme")

	assert.False(t, snap.IsLoading)
	assert.Len(t, snap.Data, len(entity.AllPlatforms)-1)
	assert.NotContains(t, snap.Data, entity.PlatformTwitter)
	assert.Equal(t, "twitter scraper unavailable", snap.Errors[entity.PlatformTwitter])
}

func TestSocialStoreRefetchClearsPlatformError(t *testing.T) {
	failing := map[entity.Platform]bool{entity.PlatformInstagram: true}
	s := NewSocialStore(newTestAPI(t, socialHandler(t, failing)), noopLogger{})

	snap := s.FetchAll(context.Background(), "acme")
	assert.Contains(t, snap.Errors, entity.PlatformInstagram)

	delete(failing, entity.PlatformInstagram)
	s.FetchPlatform(context.Background(), "acme", entity.PlatformInstagram)

	snap = s.Snapshot()
	assert.NotContains(t, snap.Errors, entity.PlatformInstagram)
	assert.Contains(t, snap.Data, entity.PlatformInstagram)
}

func TestSocialStoreBrandChangeResets(t *testing.T) {
	s := NewSocialStore(newTestAPI(t, socialHandler(t, nil)), noopLogger{})

	s.FetchAll(context.Background(), "acme")
	snap := s.FetchAll(context.Background(), "globex")

	for _, p := range entity.AllPlatforms {
		assert.Equal(t, "@globex", snap.Data[p].Handle)
	}
}

func TestSocialStoreClear(t *testing.T) {
	s := NewSocialStore(newTestAPI(t, socialHandler(t, nil)), noopLogger{})
	s.FetchAll(context.Background(), "acme")

	s.Clear()

	snap := s.Snapshot()
	assert.Empty(t, snap.Data)
	assert.Empty(t, snap.Errors)
	assert.False(t, snap.IsLoading)
	assert.False(t, s.IsLoading())
}
