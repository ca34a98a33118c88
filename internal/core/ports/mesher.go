package ports

import (
	"context"

	"go.trai.ch/facet/internal/core/domain"
)

// Mesher converts one object into a renderable mesh. This is the sole
// surface exposed to the render layer; caching strategies wrap it without
// changing the signature.
//
//go:generate go run go.uber.org/mock/mockgen -source=mesher.go -destination=mocks/mock_mesher.go -package=mocks
type Mesher interface {
	// Create tessellates the requested object. A failed per-face or
	// per-edge task aborts the whole call; no partial result is returned.
	Create(ctx context.Context, req *domain.MeshRequest) (*domain.MeshResult, error)
}

// FaceMesher is a Mesher that additionally exposes its single-face and
// single-edge primitives so a face-granular cache can schedule only the
// faces that missed.
type FaceMesher interface {
	Mesher

	// MeshFace computes the tessellation of one face. Must be called with
	// the parallel region held.
	MeshFace(ctx context.Context, face domain.FaceInfo, ordinal int, req *domain.MeshRequest) (*domain.FaceResult, error)

	// MeshEdge computes the tessellation of one edge. Returns nil (and no
	// error) when the edge produces no visible outline. Must be called with
	// the parallel region held.
	MeshEdge(ctx context.Context, edge domain.EdgeID, ordinal int, req *domain.MeshRequest) (*domain.EdgeResult, error)
}
