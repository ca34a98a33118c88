package meshcache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/facet/internal/adapters/kernel"
	"go.trai.ch/facet/internal/adapters/lineage"
	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/facet/internal/engine/meshcache"
	"go.trai.ch/facet/internal/engine/tessellate"
	"go.trai.ch/zerr"
)

// countingKernel wraps a real kernel and counts the tessellation primitives
// that reach it.
type countingKernel struct {
	ports.GeometryKernel
	faceCalls   atomic.Int64
	edgeCalls   atomic.Int64
	objectCalls atomic.Int64
}

func (c *countingKernel) TessellateFace(ctx context.Context, face domain.FaceID, req *domain.MeshRequest) (*domain.FaceGrid, error) {
	c.faceCalls.Add(1)
	return c.GeometryKernel.TessellateFace(ctx, face, req)
}

func (c *countingKernel) TessellateEdge(ctx context.Context, edge domain.EdgeID, req *domain.MeshRequest) ([][]float32, error) {
	c.edgeCalls.Add(1)
	return c.GeometryKernel.TessellateEdge(ctx, edge, req)
}

func (c *countingKernel) TessellateObject(ctx context.Context, req *domain.MeshRequest) (*domain.MeshResult, error) {
	c.objectCalls.Add(1)
	return c.GeometryKernel.TessellateObject(ctx, req)
}

// cubeStack builds a full tessellation stack over a real analytic kernel
// holding one box, and returns the pieces the tests poke at.
func cubeStack(t *testing.T) (*meshcache.FaceCache, *countingKernel, *kernel.Kernel, domain.ObjectID) {
	t.Helper()

	tracker := lineage.NewTracker()
	k := kernel.New(tracker)
	counting := &countingKernel{GeometryKernel: k}
	mesher := tessellate.NewParallelMesher(counting, tracker)
	cache := meshcache.NewFaceCache(mesher, mesher.Basic(), counting, tracker)

	id, err := k.CreateObject(domain.SceneObject{
		Name: "cube", Kind: domain.KindBox, X: 1, Y: 1, Z: 1,
	})
	require.NoError(t, err)
	return cache, counting, k, id
}

func TestFaceCache_CubeRedraw(t *testing.T) {
	cache, counting, _, id := cubeStack(t)
	ctx := context.Background()
	req := &domain.MeshRequest{Object: id, Precision: 0.01}

	first, err := cache.Create(ctx, req)
	require.NoError(t, err)
	require.Len(t, first.Faces, 6)
	require.Len(t, first.Edges, 12)
	assert.EqualValues(t, 6, counting.faceCalls.Load())
	assert.EqualValues(t, 12, counting.edgeCalls.Load(), "each shared edge is computed exactly once")

	second, err := cache.Create(ctx, req)
	require.NoError(t, err)
	require.Len(t, second.Faces, 6)
	require.Len(t, second.Edges, 12)

	// The redraw of an unchanged solid issues no kernel tessellation calls.
	assert.EqualValues(t, 6, counting.faceCalls.Load())
	assert.EqualValues(t, 12, counting.edgeCalls.Load())
	assert.Equal(t, first.Digest(), second.Digest())

	stats := cache.Stats()
	assert.EqualValues(t, 6, stats.FaceHits)
	assert.EqualValues(t, 6, stats.FaceMisses)
	assert.EqualValues(t, 12, stats.EdgeHits)
}

func TestFaceCache_EditRecomputesOneFace(t *testing.T) {
	cache, counting, k, id := cubeStack(t)
	ctx := context.Background()
	req := &domain.MeshRequest{Object: id, Precision: 0.01}

	first, err := cache.Create(ctx, req)
	require.NoError(t, err)

	topo, err := k.Enumerate(ctx, id)
	require.NoError(t, err)
	_, err = k.EditFace(topo.Faces[0].ID)
	require.NoError(t, err)

	second, err := cache.Create(ctx, req)
	require.NoError(t, err)
	require.Len(t, second.Faces, 6)
	require.Len(t, second.Edges, 12)

	// Only the edited face and the edges it claims are recomputed. The face
	// is first in declared order, so it claims all four of its edges.
	assert.EqualValues(t, 7, counting.faceCalls.Load())
	assert.EqualValues(t, 16, counting.edgeCalls.Load())

	// The edit did not move geometry, so the rendered content is identical.
	assert.Equal(t, first.Digest(), second.Digest())
}

func TestFaceCache_PrecisionPartitionsEntries(t *testing.T) {
	cache, counting, _, id := cubeStack(t)
	ctx := context.Background()

	_, err := cache.Create(ctx, &domain.MeshRequest{Object: id, Precision: 0.01})
	require.NoError(t, err)
	require.EqualValues(t, 6, counting.faceCalls.Load())

	// A different sag never reuses entries cached at another one.
	_, err = cache.Create(ctx, &domain.MeshRequest{Object: id, Precision: 0.001})
	require.NoError(t, err)
	assert.EqualValues(t, 12, counting.faceCalls.Load())
	assert.Equal(t, 12, cache.Len())
}

func TestFaceCache_NonSolidBypassesCache(t *testing.T) {
	tracker := lineage.NewTracker()
	k := kernel.New(tracker)
	counting := &countingKernel{GeometryKernel: k}
	mesher := tessellate.NewParallelMesher(counting, tracker)
	cache := meshcache.NewFaceCache(mesher, mesher.Basic(), counting, tracker)

	id, err := k.CreateObject(domain.SceneObject{Name: "p", Kind: domain.KindPanel, X: 1, Y: 1})
	require.NoError(t, err)

	res, err := cache.Create(context.Background(), &domain.MeshRequest{Object: id, Precision: 0.01})
	require.NoError(t, err)
	require.Len(t, res.Faces, 1)

	assert.EqualValues(t, 1, counting.objectCalls.Load())
	assert.EqualValues(t, 0, counting.faceCalls.Load())
	assert.Equal(t, 0, cache.Len())
}

func TestFaceCache_Clear(t *testing.T) {
	cache, counting, _, id := cubeStack(t)
	ctx := context.Background()
	req := &domain.MeshRequest{Object: id, Precision: 0.01}

	_, err := cache.Create(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 6, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Create(ctx, req)
	require.NoError(t, err)
	assert.EqualValues(t, 12, counting.faceCalls.Load(), "cleared entries are recomputed")
}

// flakyKernel is a minimal in-memory kernel whose faces can be made to fail
// exactly once.
type flakyKernel struct {
	topo   *domain.Topology
	region chan struct{}

	mu       sync.Mutex
	failOnce map[domain.FaceID]bool
}

func newFlakyKernel(topo *domain.Topology) *flakyKernel {
	return &flakyKernel{
		topo:     topo,
		region:   make(chan struct{}, 1),
		failOnce: make(map[domain.FaceID]bool),
	}
}

func (k *flakyKernel) Enumerate(_ context.Context, _ domain.ObjectID) (*domain.Topology, error) {
	return k.topo, nil
}

func (k *flakyKernel) TessellateObject(_ context.Context, _ *domain.MeshRequest) (*domain.MeshResult, error) {
	return nil, zerr.New("not a single-task object")
}

func (k *flakyKernel) TessellateFace(_ context.Context, face domain.FaceID, _ *domain.MeshRequest) (*domain.FaceGrid, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.failOnce[face] {
		delete(k.failOnce, face)
		return nil, zerr.New("surface degenerated")
	}
	return &domain.FaceGrid{Indices: []uint32{uint32(face)}}, nil
}

func (k *flakyKernel) TessellateEdge(_ context.Context, edge domain.EdgeID, _ *domain.MeshRequest) ([][]float32, error) {
	return [][]float32{{float32(edge), 0, 0}}, nil
}

func (k *flakyKernel) Changed(_ domain.FaceID) bool { return false }

func (k *flakyKernel) AcquireParallelRegion(ctx context.Context) (ports.ReleaseFunc, error) {
	select {
	case k.region <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	var once sync.Once
	return func() { once.Do(func() { <-k.region }) }, nil
}

type staticTracker map[domain.FaceID]domain.LineageID

func (t staticTracker) LineageOf(face domain.FaceID) (domain.LineageID, bool) {
	l, ok := t[face]
	return l, ok
}

func TestFaceCache_FailedCallKeepsSettledWork(t *testing.T) {
	topo := &domain.Topology{
		Solid: true,
		Faces: []domain.FaceInfo{
			{ID: 1, Edges: []domain.EdgeID{10}},
			{ID: 2, Edges: []domain.EdgeID{11}},
			{ID: 3, Edges: []domain.EdgeID{12}},
		},
		Edges: []domain.EdgeID{10, 11, 12},
	}
	k := newFlakyKernel(topo)
	k.failOnce[2] = true
	tracker := staticTracker{1: 101, 2: 102, 3: 103}
	mesher := tessellate.NewParallelMesher(k, tracker)
	cache := meshcache.NewFaceCache(mesher, mesher.Basic(), k, tracker)
	ctx := context.Background()
	req := &domain.MeshRequest{Object: 5, Precision: 0.01}

	_, err := cache.Create(ctx, req)
	require.Error(t, err, "a failed face task aborts the whole call")

	// Tasks that settled before the failure keep their entries; the retry
	// only recomputes the face that failed.
	res, err := cache.Create(ctx, req)
	require.NoError(t, err)
	require.Len(t, res.Faces, 3)
	require.Len(t, res.Edges, 3)

	stats := cache.Stats()
	assert.EqualValues(t, 2, stats.FaceHits)
	assert.EqualValues(t, 4, stats.FaceMisses)
}
