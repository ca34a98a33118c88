// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/facet/internal/core/domain"
)

// ReleaseFunc releases the parallel region. It must be called exactly once
// for every successful acquire, on every exit path.
type ReleaseFunc func()

// GeometryKernel is the capability contract of the external geometry kernel.
// The kernel's internal state is not safe for interleaved tessellation calls
// outside the parallel region; callers bracket an entire fan-out with one
// acquire/release pair, never individual calls.
//
//go:generate go run go.uber.org/mock/mockgen -source=kernel.go -destination=mocks/mock_kernel.go -package=mocks
type GeometryKernel interface {
	// Enumerate returns the faces and edges of an object in declared order.
	Enumerate(ctx context.Context, object domain.ObjectID) (*domain.Topology, error)

	// TessellateObject tessellates a non-decomposable object as a single
	// task. It is the fallback path for non-solids.
	TessellateObject(ctx context.Context, req *domain.MeshRequest) (*domain.MeshResult, error)

	// TessellateFace triangulates one face at the requested precision and
	// form. Must be called with the parallel region held.
	TessellateFace(ctx context.Context, face domain.FaceID, req *domain.MeshRequest) (*domain.FaceGrid, error)

	// TessellateEdge tessellates one edge into its outline polylines. An
	// edge with no visible outline yields an empty slice and no error.
	// Must be called with the parallel region held.
	TessellateEdge(ctx context.Context, edge domain.EdgeID, req *domain.MeshRequest) ([][]float32, error)

	// Changed reports whether the face was modified since it was last
	// tessellated. The query is safe outside the parallel region.
	Changed(face domain.FaceID) bool

	// AcquireParallelRegion enters the process-wide parallel-execution
	// region. Concurrent acquirers block until the holder releases.
	AcquireParallelRegion(ctx context.Context) (ReleaseFunc, error)
}
