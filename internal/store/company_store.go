package store

import (
	"context"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/entity"
	"brandscope-be/internal/pkg/format"
	"brandscope-be/internal/pkg/logger"
)

type ICompanyStore interface {
	// Fetch loads the tracked-company list and returns the settled state.
	Fetch(ctx context.Context) Snapshot[[]entity.Company]
	Snapshot() Snapshot[[]entity.Company]
	Clear()

	// Add inserts a company locally for optimistic UI; the backend copy
	// already exists by the time this is called.
	Add(company entity.Company)
	Remove(id int64)

	// BySlug resolves a dashboard route slug back to its company.
	BySlug(slug string) (*entity.Company, bool)
}

type companyStore struct {
	api    *apiclient.Client
	logger logger.ILogger
	state  resource[[]entity.Company]
}

func NewCompanyStore(api *apiclient.Client, log logger.ILogger) ICompanyStore {
	return &companyStore{api: api, logger: log}
}

func (s *companyStore) Fetch(ctx context.Context) Snapshot[[]entity.Company] {
	epoch := s.state.begin()

	res := s.api.Get(ctx, "/api/frontend/companies", nil)
	if !res.OK() {
		s.state.fail(epoch, res.Err)
		return s.state.snapshot()
	}

	var payload struct {
		Companies []entity.Company `json:"companies"`
	}
	if err := res.DecodeInto(&payload); err != nil || payload.Companies == nil {
		s.logger.Warn("CompanyStore", "Company list payload missing", map[string]interface{}{"error": err})
		s.state.fail(epoch, ErrNoData)
		return s.state.snapshot()
	}

	s.state.succeed(epoch, &payload.Companies)
	return s.state.snapshot()
}

func (s *companyStore) Snapshot() Snapshot[[]entity.Company] {
	return s.state.snapshot()
}

func (s *companyStore) Clear() {
	s.state.clear()
}

func (s *companyStore) Add(company entity.Company) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if s.state.data == nil {
		s.state.data = &[]entity.Company{company}
		return
	}
	list := append(*s.state.data, company)
	s.state.data = &list
}

func (s *companyStore) Remove(id int64) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if s.state.data == nil {
		return
	}
	list := make([]entity.Company, 0, len(*s.state.data))
	for _, c := range *s.state.data {
		if c.Id != id {
			list = append(list, c)
		}
	}
	s.state.data = &list
}

func (s *companyStore) BySlug(slug string) (*entity.Company, bool) {
	snap := s.state.snapshot()
	if snap.Data == nil {
		return nil, false
	}
	// Slug collisions are unresolved upstream; first match wins.
	for i := range *snap.Data {
		c := (*snap.Data)[i]
		if format.Slugify(c.BrandName) == slug {
			return &c, true
		}
	}
	return nil, false
}
