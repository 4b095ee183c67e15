package store

import (
	"context"
	"net/url"
	"sync"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/entity"
	"brandscope-be/internal/pkg/logger"
)

type IWebsiteStore interface {
	// Fetch loads the SEO metrics for a domain.
	Fetch(ctx context.Context, domain string) Snapshot[entity.WebsiteData]

	// FetchKeywords loads the keyword-opportunity table; tracked as its
	// own resource so a failure here never blanks the SEO metrics.
	FetchKeywords(ctx context.Context, domain string) Snapshot[[]entity.KeywordSuggestion]

	Snapshot() Snapshot[entity.WebsiteData]
	Keywords() Snapshot[[]entity.KeywordSuggestion]
	Clear()
}

type websiteStore struct {
	api    *apiclient.Client
	logger logger.ILogger

	mu       sync.Mutex
	key      string
	website  resource[entity.WebsiteData]
	keywords resource[[]entity.KeywordSuggestion]
}

func NewWebsiteStore(api *apiclient.Client, log logger.ILogger) IWebsiteStore {
	return &websiteStore{api: api, logger: log}
}

func (s *websiteStore) Fetch(ctx context.Context, domain string) Snapshot[entity.WebsiteData] {
	s.rotateKey(domain)
	epoch := s.website.begin()

	res := s.api.Post(ctx, "/api/frontend/data", map[string]string{
		"domain":  domain,
		"section": "website",
	}, nil)
	if !res.OK() {
		s.website.fail(epoch, res.Err)
		return s.website.snapshot()
	}

	var payload struct {
		Data *entity.WebsiteData `json:"data"`
	}
	if err := res.DecodeInto(&payload); err != nil || payload.Data == nil {
		s.logger.Warn("WebsiteStore", "Website payload missing", map[string]interface{}{
			"domain": domain, "error": err,
		})
		s.website.fail(epoch, ErrNoData)
		return s.website.snapshot()
	}

	s.website.succeed(epoch, payload.Data)
	return s.website.snapshot()
}

func (s *websiteStore) FetchKeywords(ctx context.Context, domain string) Snapshot[[]entity.KeywordSuggestion] {
	s.rotateKey(domain)
	epoch := s.keywords.begin()

	res := s.api.Get(ctx, "/api/frontend/keyword-suggestions?domain="+url.QueryEscape(domain), nil)
	if !res.OK() {
		s.keywords.fail(epoch, res.Err)
		return s.keywords.snapshot()
	}

	var payload struct {
		Suggestions []entity.KeywordSuggestion `json:"suggestions"`
	}
	if err := res.DecodeInto(&payload); err != nil || payload.Suggestions == nil {
		s.keywords.fail(epoch, ErrNoData)
		return s.keywords.snapshot()
	}

	s.keywords.succeed(epoch, &payload.Suggestions)
	return s.keywords.snapshot()
}

func (s *websiteStore) Snapshot() Snapshot[entity.WebsiteData] {
	return s.website.snapshot()
}

func (s *websiteStore) Keywords() Snapshot[[]entity.KeywordSuggestion] {
	return s.keywords.snapshot()
}

func (s *websiteStore) Clear() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
	s.website.clear()
	s.keywords.clear()
}

func (s *websiteStore) rotateKey(domain string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key != domain {
		s.website.clear()
		s.keywords.clear()
		s.key = domain
	}
}
