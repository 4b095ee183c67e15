package store

import (
	"context"
	"sync"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/entity"
	"brandscope-be/internal/pkg/logger"
)

type IOverviewStore interface {
	// Fetch loads the overview for one company domain. Switching domains
	// clears the previous company's data before the new fetch starts, so
	// a reader never sees the old entity under the new route.
	Fetch(ctx context.Context, domain string) Snapshot[entity.CompanyOverview]
	Snapshot() Snapshot[entity.CompanyOverview]
	Clear()
}

type overviewStore struct {
	api    *apiclient.Client
	logger logger.ILogger

	mu    sync.Mutex
	key   string
	state resource[entity.CompanyOverview]
}

func NewOverviewStore(api *apiclient.Client, log logger.ILogger) IOverviewStore {
	return &overviewStore{api: api, logger: log}
}

func (s *overviewStore) Fetch(ctx context.Context, domain string) Snapshot[entity.CompanyOverview] {
	s.mu.Lock()
	if s.key != domain {
		s.state.clear()
		s.key = domain
	}
	s.mu.Unlock()

	epoch := s.state.begin()

	res := s.api.Post(ctx, "/api/frontend/data", map[string]string{"domain": domain}, nil)
	if !res.OK() {
		s.state.fail(epoch, res.Err)
		return s.state.snapshot()
	}

	var payload struct {
		Data *entity.CompanyOverview `json:"data"`
	}
	if err := res.DecodeInto(&payload); err != nil || payload.Data == nil {
		s.logger.Warn("OverviewStore", "Overview payload missing", map[string]interface{}{
			"domain": domain, "error": err,
		})
		s.state.fail(epoch, ErrNoData)
		return s.state.snapshot()
	}

	s.state.succeed(epoch, payload.Data)
	return s.state.snapshot()
}

func (s *overviewStore) Snapshot() Snapshot[entity.CompanyOverview] {
	return s.state.snapshot()
}

func (s *overviewStore) Clear() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
	s.state.clear()
}
