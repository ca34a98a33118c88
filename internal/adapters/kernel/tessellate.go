package kernel

import (
	"context"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/zerr"
)

// TessellateFace triangulates one face at the requested precision and clears
// its changed flag. Callers must hold the parallel region.
func (k *Kernel) TessellateFace(_ context.Context, id domain.FaceID, req *domain.MeshRequest) (*domain.FaceGrid, error) {
	if !k.regionHeld() {
		return nil, zerr.With(domain.ErrOutsideRegion, "face", id.String())
	}

	k.mu.Lock()
	f, ok := k.faces[id]
	if ok {
		f.changed = false
	}
	k.mu.Unlock()
	if !ok {
		return nil, zerr.With(domain.ErrFaceNotFound, "face", id.String())
	}

	grid := f.surf.grid(req.Precision, req.Form)
	return &grid, nil
}

// TessellateEdge tessellates one edge into its outline polylines. Callers
// must hold the parallel region.
func (k *Kernel) TessellateEdge(_ context.Context, id domain.EdgeID, req *domain.MeshRequest) ([][]float32, error) {
	if !k.regionHeld() {
		return nil, zerr.With(domain.ErrOutsideRegion, "edge", id.String())
	}

	k.mu.RLock()
	e, ok := k.edges[id]
	k.mu.RUnlock()
	if !ok {
		return nil, zerr.With(domain.ErrEdgeNotFound, "edge", id.String())
	}

	return e.curve.outlines(req.Precision), nil
}

// TessellateObject tessellates a whole object as one task: the single-task
// path for objects without a decomposable face/edge set. Callers must hold
// the parallel region.
func (k *Kernel) TessellateObject(_ context.Context, req *domain.MeshRequest) (*domain.MeshResult, error) {
	if !k.regionHeld() {
		return nil, zerr.With(domain.ErrOutsideRegion, "object", req.Object.String())
	}

	k.mu.RLock()
	obj, ok := k.objects[req.Object]
	k.mu.RUnlock()
	if !ok {
		return nil, zerr.With(domain.ErrObjectNotFound, "object", req.Object.String())
	}

	res := &domain.MeshResult{}
	for i, f := range obj.faces {
		grid := f.surf.grid(req.Precision, req.Form)
		res.Faces = append(res.Faces, domain.FaceResult{
			Grid:    grid,
			Face:    f.id,
			Style:   f.style,
			Ordinal: i,
		})
	}
	for i, e := range obj.edges {
		outlines := e.curve.outlines(req.Precision)
		if len(outlines) == 0 {
			continue
		}
		var polyline []float32
		if req.OutlinesOnly {
			polyline = outlines[0]
		} else {
			for _, o := range outlines {
				polyline = append(polyline, o...)
			}
		}
		res.Edges = append(res.Edges, domain.EdgeResult{
			Polyline: polyline,
			Edge:     e.id,
			Ordinal:  i,
		})
	}
	return res, nil
}
