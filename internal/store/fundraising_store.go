package store

import (
	"context"
	"net/url"
	"sync"
	"time"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/entity"
	"brandscope-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

type IFundraisingStore interface {
	// Fetch loads fundraising history, under the same freshness window
	// as the revenue store.
	Fetch(ctx context.Context, brand string) Snapshot[entity.FundraisingData]
	Snapshot() Snapshot[entity.FundraisingData]
	Clear()
}

type fundraisingStore struct {
	api    *apiclient.Client
	logger logger.ILogger
	fresh  *cache.Cache

	mu    sync.Mutex
	key   string
	state resource[entity.FundraisingData]
}

func NewFundraisingStore(api *apiclient.Client, log logger.ILogger, freshnessWindow time.Duration) IFundraisingStore {
	return &fundraisingStore{
		api:    api,
		logger: log,
		fresh:  cache.New(freshnessWindow, 10*time.Minute),
	}
}

func (s *fundraisingStore) Fetch(ctx context.Context, brand string) Snapshot[entity.FundraisingData] {
	s.mu.Lock()
	if s.key != brand {
		s.state.clear()
		s.key = brand
	}
	s.mu.Unlock()

	if _, fresh := s.fresh.Get(brand); fresh {
		if snap := s.state.snapshot(); snap.Data != nil {
			return snap
		}
	}

	epoch := s.state.begin()

	res := s.api.Get(ctx, "/api/fundraising?brand="+url.QueryEscape(brand), nil)
	if !res.OK() {
		s.state.fail(epoch, res.Err)
		return s.state.snapshot()
	}

	var payload struct {
		Fundraising *entity.FundraisingData `json:"fundraising"`
	}
	if err := res.DecodeInto(&payload); err != nil || payload.Fundraising == nil {
		s.logger.Warn("FundraisingStore", "Fundraising payload missing", map[string]interface{}{
			"brand": brand, "error": err,
		})
		s.state.fail(epoch, ErrNoData)
		return s.state.snapshot()
	}

	if s.state.succeed(epoch, payload.Fundraising) {
		s.fresh.Set(brand, struct{}{}, cache.DefaultExpiration)
	}
	return s.state.snapshot()
}

func (s *fundraisingStore) Snapshot() Snapshot[entity.FundraisingData] {
	return s.state.snapshot()
}

func (s *fundraisingStore) Clear() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
	s.state.clear()
	s.fresh.Flush()
}
