package store

import (
	"context"
	"sync"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/entity"
	"brandscope-be/internal/pkg/logger"
)

// SocialSnapshot is the multi-key view over the five platform slots.
// IsLoading is derived from the pending set, never stored, so it cannot
// desync from the per-platform fetches.
type SocialSnapshot struct {
	Data      map[entity.Platform]*entity.SocialPlatformData
	Errors    map[entity.Platform]string
	Pending   []entity.Platform
	IsLoading bool
}

type ISocialStore interface {
	// FetchAll fans out one fetch per platform and returns once every
	// child has settled. Each child's result is observable through
	// Snapshot as soon as it lands, independent of its siblings.
	FetchAll(ctx context.Context, brand string) SocialSnapshot

	// FetchPlatform refreshes a single platform slot.
	FetchPlatform(ctx context.Context, brand string, platform entity.Platform)

	Snapshot() SocialSnapshot
	IsLoading() bool
	Clear()
}

type socialStore struct {
	api    *apiclient.Client
	logger logger.ILogger

	mu      sync.Mutex
	brand   string
	data    map[entity.Platform]*entity.SocialPlatformData
	errs    map[entity.Platform]string
	pending map[entity.Platform]struct{}
	epochs  map[entity.Platform]uint64
}

func NewSocialStore(api *apiclient.Client, log logger.ILogger) ISocialStore {
	return &socialStore{
		api:     api,
		logger:  log,
		data:    make(map[entity.Platform]*entity.SocialPlatformData),
		errs:    make(map[entity.Platform]string),
		pending: make(map[entity.Platform]struct{}),
		epochs:  make(map[entity.Platform]uint64),
	}
}

func (s *socialStore) FetchAll(ctx context.Context, brand string) SocialSnapshot {
	s.mu.Lock()
	if s.brand != brand {
		s.resetLocked()
		s.brand = brand
	}
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, platform := range entity.AllPlatforms {
		wg.Add(1)
		go func(p entity.Platform) {
			defer wg.Done()
			s.FetchPlatform(ctx, brand, p)
		}(platform)
	}
	wg.Wait()

	return s.Snapshot()
}

func (s *socialStore) FetchPlatform(ctx context.Context, brand string, platform entity.Platform) {
	s.mu.Lock()
	s.epochs[platform]++
	epoch := s.epochs[platform]
	s.pending[platform] = struct{}{}
	delete(s.errs, platform)
	s.mu.Unlock()

	res := s.api.Post(ctx, "/api/frontend/social-data", map[string]string{
		"brand":    brand,
		"platform": string(platform),
	}, nil)

	if !res.OK() {
		s.settle(platform, epoch, nil, res.Err)
		return
	}

	var payload struct {
		Data *entity.SocialPlatformData `json:"data"`
	}
	if err := res.DecodeInto(&payload); err != nil || payload.Data == nil {
		s.logger.Warn("SocialStore", "Platform payload missing", map[string]interface{}{
			"brand": brand, "platform": string(platform), "error": err,
		})
		s.settle(platform, epoch, nil, ErrNoData)
		return
	}

	payload.Data.Platform = platform
	s.settle(platform, epoch, payload.Data, "")
}

// settle records one platform's outcome. A stale epoch means a newer
// fetch (or a Clear) superseded this one; the late result is dropped
// and the pending slot is left to the newer owner.
func (s *socialStore) settle(platform entity.Platform, epoch uint64, data *entity.SocialPlatformData, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epochs[platform] != epoch {
		return
	}
	delete(s.pending, platform)
	if errMsg != "" {
		s.errs[platform] = errMsg
		delete(s.data, platform)
		return
	}
	s.data[platform] = data
	delete(s.errs, platform)
}

func (s *socialStore) Snapshot() SocialSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SocialSnapshot{
		Data:      make(map[entity.Platform]*entity.SocialPlatformData, len(s.data)),
		Errors:    make(map[entity.Platform]string, len(s.errs)),
		IsLoading: len(s.pending) > 0,
	}
	for p, d := range s.data {
		snap.Data[p] = d
	}
	for p, e := range s.errs {
		snap.Errors[p] = e
	}
	for p := range s.pending {
		snap.Pending = append(snap.Pending, p)
	}
	return snap
}

func (s *socialStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0
}

func (s *socialStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brand = ""
	s.resetLocked()
}

func (s *socialStore) resetLocked() {
	s.data = make(map[entity.Platform]*entity.SocialPlatformData)
	s.errs = make(map[entity.Platform]string)
	s.pending = make(map[entity.Platform]struct{})
	for p := range s.epochs {
		s.epochs[p]++
	}
}
