package tessellate

import (
	"context"
	"sync"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.FaceMesher = (*ParallelMesher)(nil)

// ParallelMesher decomposes a solid into faces and edges and fans the
// per-face and per-edge kernel calls out concurrently. The whole fan-out runs
// inside one parallel-region bracket; individual tasks must not acquire it.
type ParallelMesher struct {
	kernel  ports.GeometryKernel
	tracker ports.LineageTracker
	basic   *BasicMesher
}

// NewParallelMesher creates a ParallelMesher on the given kernel and lineage
// tracker.
func NewParallelMesher(kernel ports.GeometryKernel, tracker ports.LineageTracker) *ParallelMesher {
	return &ParallelMesher{
		kernel:  kernel,
		tracker: tracker,
		basic:   NewBasicMesher(kernel),
	}
}

// Basic returns the single-task fallback strategy sharing this mesher's
// kernel.
func (m *ParallelMesher) Basic() *BasicMesher {
	return m.basic
}

// Create tessellates the requested object. Non-solid objects are delegated
// to the basic fallback. A failed face or edge task aborts the whole call;
// in-flight kernel tasks still run to completion since issued calls cannot
// be cancelled.
func (m *ParallelMesher) Create(ctx context.Context, req *domain.MeshRequest) (*domain.MeshResult, error) {
	topo, err := m.kernel.Enumerate(ctx, req.Object)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to enumerate object"), "object", req.Object.String())
	}
	if !topo.Solid {
		return m.basic.Create(ctx, req)
	}

	release, err := m.kernel.AcquireParallelRegion(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to acquire parallel region")
	}
	defer release()

	var g errgroup.Group

	// Grid slots are preallocated so each face task writes its own index
	// and the declared face order is preserved without sorting.
	faces := make([]domain.FaceResult, len(topo.Faces))
	for i, info := range topo.Faces {
		g.Go(func() error {
			fr, ferr := m.MeshFace(ctx, info, i, req)
			if ferr != nil {
				return ferr
			}
			faces[i] = *fr
			return nil
		})
	}

	var (
		mu    sync.Mutex
		edges []domain.EdgeResult
	)
	for i, edge := range topo.Edges {
		g.Go(func() error {
			er, eerr := m.MeshEdge(ctx, edge, i, req)
			if eerr != nil {
				return eerr
			}
			if er == nil {
				// Edge produced no visible outline.
				return nil
			}
			mu.Lock()
			edges = append(edges, *er)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.MeshResult{Faces: faces, Edges: edges}, nil
}

// MeshFace triangulates one face and converts its kernel attributes into the
// face result. The lineage id is resolved best-effort; an unresolved lineage
// stays zero and simply makes the face ineligible for caching.
func (m *ParallelMesher) MeshFace(ctx context.Context, face domain.FaceInfo, ordinal int, req *domain.MeshRequest) (*domain.FaceResult, error) {
	grid, err := m.kernel.TessellateFace(ctx, face.ID, req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "face tessellation failed"), "face", face.ID.String())
	}

	lineage, _ := m.tracker.LineageOf(face.ID)
	return &domain.FaceResult{
		Grid:    *grid,
		Face:    face.ID,
		Style:   face.Style,
		Lineage: lineage,
		Ordinal: ordinal,
	}, nil
}

// MeshEdge tessellates one edge. With OutlinesOnly set only the first
// outline polyline is taken; otherwise all outlines are concatenated, which
// is sufficient for the unordered edge aggregate the render layer draws.
func (m *ParallelMesher) MeshEdge(ctx context.Context, edge domain.EdgeID, ordinal int, req *domain.MeshRequest) (*domain.EdgeResult, error) {
	outlines, err := m.kernel.TessellateEdge(ctx, edge, req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "edge tessellation failed"), "edge", edge.String())
	}
	if len(outlines) == 0 {
		return nil, nil
	}

	var polyline []float32
	if req.OutlinesOnly {
		polyline = outlines[0]
	} else {
		size := 0
		for _, o := range outlines {
			size += len(o)
		}
		polyline = make([]float32, 0, size)
		for _, o := range outlines {
			polyline = append(polyline, o...)
		}
	}

	return &domain.EdgeResult{
		Polyline: polyline,
		Edge:     edge,
		Ordinal:  ordinal,
	}, nil
}
