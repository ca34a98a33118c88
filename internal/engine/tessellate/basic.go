// Package tessellate implements the tessellation strategies that turn kernel
// objects into renderable meshes.
package tessellate

import (
	"context"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Mesher = (*BasicMesher)(nil)

// BasicMesher is the non-parallel single-task strategy. It hands the whole
// object to the kernel in one call and is the fallback for objects without a
// decomposable face/edge set.
type BasicMesher struct {
	kernel ports.GeometryKernel
}

// NewBasicMesher creates a BasicMesher on the given kernel.
func NewBasicMesher(kernel ports.GeometryKernel) *BasicMesher {
	return &BasicMesher{kernel: kernel}
}

// Create tessellates the object as a single kernel task. The parallel region
// brackets the call because the kernel state is not safe outside it even for
// a lone task.
func (m *BasicMesher) Create(ctx context.Context, req *domain.MeshRequest) (*domain.MeshResult, error) {
	release, err := m.kernel.AcquireParallelRegion(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to acquire parallel region")
	}
	defer release()

	res, err := m.kernel.TessellateObject(ctx, req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "object tessellation failed"), "object", req.Object.String())
	}
	return res, nil
}
