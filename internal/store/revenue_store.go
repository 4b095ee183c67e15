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

type IRevenueStore interface {
	// Fetch loads revenue data, skipping the network while the previous
	// successful fetch for the same domain is inside the freshness
	// window. Best effort only: concurrent callers racing within the
	// window are not further deduplicated.
	Fetch(ctx context.Context, domain string) Snapshot[entity.RevenueData]
	Snapshot() Snapshot[entity.RevenueData]
	Clear()
}

type revenueStore struct {
	api    *apiclient.Client
	logger logger.ILogger
	fresh  *cache.Cache

	mu    sync.Mutex
	key   string
	state resource[entity.RevenueData]
}

func NewRevenueStore(api *apiclient.Client, log logger.ILogger, freshnessWindow time.Duration) IRevenueStore {
	return &revenueStore{
		api:    api,
		logger: log,
		fresh:  cache.New(freshnessWindow, 10*time.Minute),
	}
}

func (s *revenueStore) Fetch(ctx context.Context, domain string) Snapshot[entity.RevenueData] {
	s.mu.Lock()
	if s.key != domain {
		s.state.clear()
		s.key = domain
	}
	s.mu.Unlock()

	if _, fresh := s.fresh.Get(domain); fresh {
		if snap := s.state.snapshot(); snap.Data != nil {
			s.logger.Debug("RevenueStore", "Freshness window hit, skipping fetch", map[string]interface{}{
				"domain": domain,
			})
			return snap
		}
	}

	epoch := s.state.begin()

	res := s.api.Get(ctx, "/api/frontend/revenue-data?domain="+url.QueryEscape(domain), nil)
	if !res.OK() {
		s.state.fail(epoch, res.Err)
		return s.state.snapshot()
	}

	var payload struct {
		Revenue *entity.RevenueData `json:"revenue"`
	}
	if err := res.DecodeInto(&payload); err != nil || payload.Revenue == nil {
		s.logger.Warn("RevenueStore", "Revenue payload missing", map[string]interface{}{
			"domain": domain, "error": err,
		})
		s.state.fail(epoch, ErrNoData)
		return s.state.snapshot()
	}

	if s.state.succeed(epoch, payload.Revenue) {
		s.fresh.Set(domain, struct{}{}, cache.DefaultExpiration)
	}
	return s.state.snapshot()
}

func (s *revenueStore) Snapshot() Snapshot[entity.RevenueData] {
	return s.state.snapshot()
}

func (s *revenueStore) Clear() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
	s.state.clear()
	s.fresh.Flush()
}
