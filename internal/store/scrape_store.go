package store

import (
	"context"
	"sync"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/entity"
	"brandscope-be/internal/pkg/logger"
	"brandscope-be/internal/service"
	"brandscope-be/pkg/events"
)

type IScrapeStore interface {
	// Trigger asks the backend to fan out scrape jobs for a brand and
	// records the returned per-platform job ids. Jobs are never polled;
	// completion shows up when the resource data is fetched later.
	Trigger(ctx context.Context, brand, domain string) Snapshot[entity.ScrapeJob]

	// Job returns the recorded fan-out for a domain, if any.
	Job(domain string) (*entity.ScrapeJob, bool)

	Snapshot() Snapshot[entity.ScrapeJob]
	Clear()
}

type scrapeStore struct {
	api       *apiclient.Client
	publisher service.IPublisherService
	logger    logger.ILogger

	mu    sync.Mutex
	jobs  map[string]*entity.ScrapeJob
	state resource[entity.ScrapeJob]
}

func NewScrapeStore(api *apiclient.Client, publisher service.IPublisherService, log logger.ILogger) IScrapeStore {
	return &scrapeStore{
		api:       api,
		publisher: publisher,
		logger:    log,
		jobs:      make(map[string]*entity.ScrapeJob),
	}
}

func (s *scrapeStore) Trigger(ctx context.Context, brand, domain string) Snapshot[entity.ScrapeJob] {
	epoch := s.state.begin()

	res := s.api.Post(ctx, "/api/scrape", map[string]string{
		"brand":  brand,
		"domain": domain,
	}, nil)
	if !res.OK() {
		s.state.fail(epoch, res.Err)
		return s.state.snapshot()
	}

	var payload struct {
		JobIds map[string]int `json:"job_ids"`
	}
	if err := res.DecodeInto(&payload); err != nil || len(payload.JobIds) == 0 {
		s.logger.Warn("ScrapeStore", "Scrape response carried no job ids", map[string]interface{}{
			"brand": brand, "domain": domain, "error": err,
		})
		s.state.fail(epoch, ErrNoData)
		return s.state.snapshot()
	}

	job := &entity.ScrapeJob{
		Brand:            brand,
		Domain:           domain,
		JobIdsByPlatform: payload.JobIds,
	}

	s.mu.Lock()
	s.jobs[domain] = job
	s.mu.Unlock()

	s.state.succeed(epoch, job)

	if err := s.publisher.Publish(ctx, events.New(events.TypeScrapeStarted, map[string]interface{}{
		"brand":  brand,
		"domain": domain,
		"jobs":   payload.JobIds,
	})); err != nil {
		s.logger.Warn("ScrapeStore", "Failed to publish scrape event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return s.state.snapshot()
}

func (s *scrapeStore) Job(domain string) (*entity.ScrapeJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[domain]
	return job, ok
}

func (s *scrapeStore) Snapshot() Snapshot[entity.ScrapeJob] {
	return s.state.snapshot()
}

func (s *scrapeStore) Clear() {
	s.mu.Lock()
	s.jobs = make(map[string]*entity.ScrapeJob)
	s.mu.Unlock()
	s.state.clear()
}
