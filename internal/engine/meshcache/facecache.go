// Package meshcache implements the memoizing decorators around the
// tessellation strategies: a per-face cache keyed by lineage identity, a
// whole-object cache with an at-most-one-build guarantee, and the session
// that scopes both cache tables to one batch of redraw operations.
package meshcache

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Mesher = (*FaceCache)(nil)

// faceKey partitions the per-face table. Entries carry the precision bits so
// a face cached at one sag is never reused at another, independently of the
// coarser object-level key.
type faceKey struct {
	lineage   domain.LineageID
	precision uint64
}

// faceEntry is the settled pair stored per face: its grid and the edge
// results the face claimed when it was computed.
type faceEntry struct {
	face  domain.FaceResult
	edges []domain.EdgeResult
}

// FaceStats holds the hit/miss counters of one FaceCache.
type FaceStats struct {
	FaceHits   uint64
	FaceMisses uint64
	EdgeHits   uint64
}

// FaceCache wraps a FaceMesher with per-face memoization. A face is reused
// only when its lineage resolves and the kernel reports it unchanged; any
// detected mutation recomputes the face and overwrites its entry under the
// same lineage id. A per-call seen-edge set deduplicates edges shared
// between faces, so each shared edge is computed and emitted exactly once
// per request.
type FaceCache struct {
	inner   ports.FaceMesher
	kernel  ports.GeometryKernel
	tracker ports.LineageTracker
	basic   ports.Mesher

	mu      sync.Mutex
	entries map[faceKey]faceEntry

	faceHits   atomic.Uint64
	faceMisses atomic.Uint64
	edgeHits   atomic.Uint64
}

// NewFaceCache creates a FaceCache over the given strategy. Non-solid
// requests bypass the cache entirely and go to the basic fallback.
func NewFaceCache(
	inner ports.FaceMesher,
	basic ports.Mesher,
	kernel ports.GeometryKernel,
	tracker ports.LineageTracker,
) *FaceCache {
	return &FaceCache{
		inner:   inner,
		kernel:  kernel,
		tracker: tracker,
		basic:   basic,
		entries: make(map[faceKey]faceEntry),
	}
}

// missPlan is one face that must be recomputed, together with the edges it
// claimed during classification.
type missPlan struct {
	info    domain.FaceInfo
	ordinal int
	key     faceKey
	store   bool
	claimed []domain.EdgeID
}

// missResult collects the settled computation of one missPlan. Edge slots
// are positional so the stored entry content is deterministic. A nil edge
// slot after a clean settlement means the edge produced no outline; failed
// marks the plan as never settled.
type missResult struct {
	face   *domain.FaceResult
	edges  []*domain.EdgeResult
	failed atomic.Bool
}

// Create tessellates the object, reusing cached face/edge pairs where the
// owning face is unchanged. A fully cached solid completes without a single
// kernel tessellation call and without entering the parallel region.
func (c *FaceCache) Create(ctx context.Context, req *domain.MeshRequest) (*domain.MeshResult, error) {
	topo, err := c.kernel.Enumerate(ctx, req.Object)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to enumerate object"), "object", req.Object.String())
	}
	if !topo.Solid {
		return c.basic.Create(ctx, req)
	}

	precision := math.Float64bits(req.Precision)
	faces := make([]domain.FaceResult, len(topo.Faces))
	var edges []domain.EdgeResult
	var misses []*missPlan

	// Classification walks faces in declared order, so edge claims are
	// deterministic across calls for an unchanged solid.
	seen := make(map[domain.EdgeID]bool, len(topo.Edges))
	for i, info := range topo.Faces {
		lineage, resolved := c.tracker.LineageOf(info.ID)
		key := faceKey{lineage: lineage, precision: precision}

		if resolved && !c.kernel.Changed(info.ID) {
			if entry, ok := c.lookup(key); ok {
				c.faceHits.Add(1)
				fr := entry.face
				fr.Ordinal = i
				faces[i] = fr
				for _, er := range entry.edges {
					if seen[er.Edge] {
						continue
					}
					seen[er.Edge] = true
					c.edgeHits.Add(1)
					edges = append(edges, er)
				}
				continue
			}
		}

		c.faceMisses.Add(1)
		plan := &missPlan{info: info, ordinal: i, key: key, store: resolved}
		for _, e := range info.Edges {
			if seen[e] {
				continue
			}
			seen[e] = true
			plan.claimed = append(plan.claimed, e)
		}
		misses = append(misses, plan)
	}

	if len(misses) == 0 {
		return &domain.MeshResult{Faces: faces, Edges: edges}, nil
	}

	results, err := c.computeMisses(ctx, topo, misses, req)

	// Entries are stored for every plan that fully settled, even when a
	// sibling task failed the call. Later calls then reuse the settled work
	// instead of recomputing it.
	c.storeSettled(misses, results)

	if err != nil {
		return nil, err
	}

	for pi, plan := range misses {
		res := results[pi]
		faces[plan.ordinal] = *res.face
		for _, er := range res.edges {
			if er != nil {
				edges = append(edges, *er)
			}
		}
	}

	return &domain.MeshResult{Faces: faces, Edges: edges}, nil
}

// computeMisses fans the missed faces and their claimed edges out through
// the wrapped strategy's primitives, inside one parallel-region bracket.
func (c *FaceCache) computeMisses(
	ctx context.Context,
	topo *domain.Topology,
	misses []*missPlan,
	req *domain.MeshRequest,
) ([]*missResult, error) {
	release, err := c.kernel.AcquireParallelRegion(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to acquire parallel region")
	}
	defer release()

	ordinals := topo.EdgeOrdinals()
	results := make([]*missResult, len(misses))

	var g errgroup.Group
	for pi, plan := range misses {
		results[pi] = &missResult{edges: make([]*domain.EdgeResult, len(plan.claimed))}

		g.Go(func() error {
			fr, ferr := c.inner.MeshFace(ctx, plan.info, plan.ordinal, req)
			if ferr != nil {
				results[pi].failed.Store(true)
				return ferr
			}
			results[pi].face = fr
			return nil
		})

		for ei, edge := range plan.claimed {
			g.Go(func() error {
				er, eerr := c.inner.MeshEdge(ctx, edge, ordinals[edge], req)
				if eerr != nil {
					results[pi].failed.Store(true)
					return eerr
				}
				results[pi].edges[ei] = er
				return nil
			})
		}
	}

	return results, g.Wait()
}

// storeSettled writes the entry for every plan whose face and claimed edges
// all settled. Edges that produced no outline stay claimed but store
// nothing, keeping them computed at most once per request.
func (c *FaceCache) storeSettled(misses []*missPlan, results []*missResult) {
	if len(results) != len(misses) {
		// The fan-out never started (region acquisition failed).
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for pi, plan := range misses {
		if !plan.store || results[pi].failed.Load() || results[pi].face == nil {
			continue
		}
		entry := faceEntry{face: *results[pi].face}
		for _, er := range results[pi].edges {
			if er != nil {
				entry.edges = append(entry.edges, *er)
			}
		}
		c.entries[plan.key] = entry
	}
}

func (c *FaceCache) lookup(key faceKey) (faceEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Stats returns the cumulative hit/miss counters.
func (c *FaceCache) Stats() FaceStats {
	return FaceStats{
		FaceHits:   c.faceHits.Load(),
		FaceMisses: c.faceMisses.Load(),
		EdgeHits:   c.edgeHits.Load(),
	}
}

// Len returns the number of cached face entries.
func (c *FaceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear discards every entry. Called on session teardown so no entry
// outlives its session.
func (c *FaceCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[faceKey]faceEntry)
}
