// Package kernel implements an analytic geometry kernel for primitive
// solids. It stands in for the external BREP kernel behind the same
// capability contract: enumeration, per-face and per-edge tessellation, and
// the process-wide parallel-execution region.
package kernel

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.GeometryKernel = (*Kernel)(nil)
	_ ports.Modeler        = (*Kernel)(nil)
)

// LineageRecorder is the mutating side of lineage tracking. The kernel binds
// a lineage for every new face and rebinds it on copy-on-edit; sessions only
// ever read through ports.LineageTracker.
type LineageRecorder interface {
	Bind(face domain.FaceID, lineage domain.LineageID)
	Rebind(old, current domain.FaceID)
}

// face is one boundary face of a stored object.
type face struct {
	id      domain.FaceID
	style   domain.Style
	surf    surface
	edges   []domain.EdgeID
	changed bool
}

// edge is one boundary edge of a stored object.
type edge struct {
	id    domain.EdgeID
	curve curve
}

// object is a stored kernel object with its declared face and edge order.
type object struct {
	id    domain.ObjectID
	solid bool
	faces []*face
	edges []*edge
}

// Kernel holds the analytic model store and the parallel region token.
type Kernel struct {
	lineages LineageRecorder

	ids atomic.Uint64

	mu      sync.RWMutex
	objects map[domain.ObjectID]*object
	faces   map[domain.FaceID]*face
	edges   map[domain.EdgeID]*edge

	// region is a capacity-1 semaphore: the process-wide mutual-exclusion
	// bracket around tessellation fan-outs.
	region chan struct{}
}

// New creates an empty kernel bound to the given lineage recorder.
func New(lineages LineageRecorder) *Kernel {
	return &Kernel{
		lineages: lineages,
		objects:  make(map[domain.ObjectID]*object),
		faces:    make(map[domain.FaceID]*face),
		edges:    make(map[domain.EdgeID]*edge),
		region:   make(chan struct{}, 1),
	}
}

func (k *Kernel) nextID() uint64 {
	return k.ids.Add(1)
}

// AcquireParallelRegion enters the region, blocking while another holder is
// inside. The returned release func is idempotent so deferred release on
// every exit path stays safe.
func (k *Kernel) AcquireParallelRegion(ctx context.Context) (ports.ReleaseFunc, error) {
	select {
	case k.region <- struct{}{}:
	case <-ctx.Done():
		return nil, zerr.Wrap(ctx.Err(), "parallel region acquisition aborted")
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-k.region })
	}, nil
}

// regionHeld reports whether some caller currently holds the region. It is
// a tripwire for integration errors, not an ownership check.
func (k *Kernel) regionHeld() bool {
	return len(k.region) == 1
}

// Enumerate returns the object's faces and edges in declared order.
func (k *Kernel) Enumerate(_ context.Context, id domain.ObjectID) (*domain.Topology, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	obj, ok := k.objects[id]
	if !ok {
		return nil, zerr.With(domain.ErrObjectNotFound, "object", id.String())
	}

	topo := &domain.Topology{Solid: obj.solid}
	if !obj.solid {
		return topo, nil
	}

	topo.Faces = make([]domain.FaceInfo, len(obj.faces))
	for i, f := range obj.faces {
		topo.Faces[i] = domain.FaceInfo{
			ID:    f.id,
			Style: f.style,
			Edges: append([]domain.EdgeID(nil), f.edges...),
		}
	}
	topo.Edges = make([]domain.EdgeID, len(obj.edges))
	for i, e := range obj.edges {
		topo.Edges[i] = e.id
	}
	return topo, nil
}

// Changed reports whether the face was modified since its last tessellation.
func (k *Kernel) Changed(id domain.FaceID) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()

	f, ok := k.faces[id]
	return ok && f.changed
}

// EditFace simulates a kernel copy-on-edit: the face receives a fresh
// identity, is marked changed, and its lineage is rebound to the new id.
// Returns the new face id.
func (k *Kernel) EditFace(id domain.FaceID) (domain.FaceID, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	f, ok := k.faces[id]
	if !ok {
		return 0, zerr.With(domain.ErrFaceNotFound, "face", id.String())
	}

	current := domain.FaceID(k.nextID())
	delete(k.faces, id)
	f.id = current
	f.changed = true
	k.faces[current] = f
	k.lineages.Rebind(id, current)
	return current, nil
}
