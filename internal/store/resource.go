// Package store holds the per-domain resource stores: isolated state
// containers that fetch from the intelligence API, normalize the
// payload, and track loading/error/staleness independently. Stores are
// plain injectable instances; tests build as many isolated ones as
// they need.
package store

import (
	"sync"
	"time"
)

// ErrNoData is the synthetic error set when a 2xx response lacks the
// expected nested payload field. The store must still settle rather
// than leave the consumer in a perpetual loading state.
const ErrNoData = "no data available"

// Snapshot is the consumer-facing view of one resource. On any settled
// state exactly one of Data/Err is set; both are empty only before the
// first fetch.
type Snapshot[T any] struct {
	Data          *T
	Err           string
	IsLoading     bool
	LastFetchedAt *time.Time
}

// resource serializes the fetch lifecycle for a single logical
// resource. Every fetch start bumps the epoch; a settlement carrying a
// stale epoch is discarded, so a slow response can never overwrite the
// state of a fetch (or clear) issued after it.
type resource[T any] struct {
	mu            sync.Mutex
	data          *T
	err           string
	loading       bool
	lastFetchedAt *time.Time
	epoch         uint64
}

// begin marks the resource in-flight, clears the previous error, and
// returns the epoch the caller must present at settlement.
func (r *resource[T]) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch++
	r.loading = true
	r.err = ""
	return r.epoch
}

// succeed settles with data. Returns false when the epoch is stale and
// the settlement was discarded.
func (r *resource[T]) succeed(epoch uint64, data *T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch != r.epoch {
		return false
	}
	now := time.Now()
	r.data = data
	r.err = ""
	r.loading = false
	r.lastFetchedAt = &now
	return true
}

// fail settles with an error, dropping any previous data so settled
// states never carry both.
func (r *resource[T]) fail(epoch uint64, msg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch != r.epoch {
		return false
	}
	now := time.Now()
	r.data = nil
	r.err = msg
	r.loading = false
	r.lastFetchedAt = &now
	return true
}

// clear resets to the initial idle state and invalidates any in-flight
// fetch by bumping the epoch.
func (r *resource[T]) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch++
	r.data = nil
	r.err = ""
	r.loading = false
	r.lastFetchedAt = nil
}

func (r *resource[T]) snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{
		Data:          r.data,
		Err:           r.err,
		IsLoading:     r.loading,
		LastFetchedAt: r.lastFetchedAt,
	}
}
