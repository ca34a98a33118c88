package meshcache

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var _ ports.Mesher = (*ObjectCache)(nil)

// ObjectStats holds the hit/miss counters of one ObjectCache.
type ObjectStats struct {
	Hits   uint64
	Misses uint64
}

// ObjectCache wraps a Mesher with whole-object memoization keyed by
// (object, precision). Concurrent calls for the same key coalesce onto a
// single in-flight build, so at most one computation runs per key and every
// caller observes its result. A failed build leaves no table entry behind;
// a later call for the same key retries fresh.
type ObjectCache struct {
	inner ports.Mesher

	mu      sync.RWMutex
	settled map[domain.ObjectMeshKey]*domain.MeshResult
	flight  singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewObjectCache creates an ObjectCache over the given strategy.
func NewObjectCache(inner ports.Mesher) *ObjectCache {
	return &ObjectCache{
		inner:   inner,
		settled: make(map[domain.ObjectMeshKey]*domain.MeshResult),
	}
}

// Create returns the cached result for the request's key or computes it.
// Entries never leak across distinct precision keys: the precision bits are
// part of the key. Once a computation is issued it runs to completion even
// if the caller's context is abandoned, and its result may still populate
// the table.
func (c *ObjectCache) Create(ctx context.Context, req *domain.MeshRequest) (*domain.MeshResult, error) {
	key := req.Key()

	c.mu.RLock()
	res, ok := c.settled[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return res, nil
	}

	v, err, _ := c.flight.Do(key.String(), func() (any, error) {
		// Re-check under the flight: a previous holder may have settled the
		// key between the fast path and here.
		c.mu.RLock()
		settled, found := c.settled[key]
		c.mu.RUnlock()
		if found {
			return settled, nil
		}

		c.misses.Add(1)
		built, berr := c.inner.Create(ctx, req)
		if berr != nil {
			// Nothing is stored for a failed build; the flight forgets the
			// key when Do returns, so later callers retry instead of
			// observing a poisoned entry.
			return nil, berr
		}

		c.mu.Lock()
		c.settled[key] = built
		c.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.MeshResult), nil
}

// Stats returns the cumulative hit/miss counters.
func (c *ObjectCache) Stats() ObjectStats {
	return ObjectStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// Len returns the number of settled entries.
func (c *ObjectCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.settled)
}

// Clear discards every entry. Called on session teardown so no entry
// outlives its session.
func (c *ObjectCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settled = make(map[domain.ObjectMeshKey]*domain.MeshResult)
}
