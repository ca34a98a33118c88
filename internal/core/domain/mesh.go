// Package domain contains the core value types for mesh tessellation.
package domain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// FormFlags carries the tessellation form options of a request. The flags
// influence grid generation but do not partition any cache; only the
// precision does.
type FormFlags struct {
	// Quad requests quad-dominant grids where the kernel supports them.
	Quad bool
	// Fair requests fairing of the grid interior.
	Fair bool
}

// MeshRequest describes one redraw request for a single object.
type MeshRequest struct {
	Object ObjectID
	// Precision is the maximum chordal deviation (sag) between the exact
	// geometry and its tessellation.
	Precision float64
	Form      FormFlags
	// OutlinesOnly restricts edge tessellation to the first outline polyline
	// of each edge.
	OutlinesOnly bool
}

// Key returns the cache key of the request at object granularity.
func (r *MeshRequest) Key() ObjectMeshKey {
	return ObjectMeshKey{
		Object:    r.Object,
		Precision: math.Float64bits(r.Precision),
	}
}

// ObjectMeshKey partitions the whole-object cache. Precision holds the IEEE
// bits of the sag value so the key stays comparable and totally ordered.
type ObjectMeshKey struct {
	Object    ObjectID
	Precision uint64
}

// String returns a stable textual form, used as the singleflight key.
func (k ObjectMeshKey) String() string {
	return fmt.Sprintf("%016x@%016x", uint64(k.Object), k.Precision)
}

// FaceGrid is the triangulated representation of one face: an index buffer
// into interleaved position and normal buffers (three floats per vertex).
type FaceGrid struct {
	Indices   []uint32
	Positions []float32
	Normals   []float32
}

// Style is an opaque display-style token derived from the face's kernel
// attributes (color, layer). The render layer interprets it; this layer only
// carries it through.
type Style uint32

// FaceResult is the tessellation of a single face.
type FaceResult struct {
	Grid    FaceGrid
	Face    FaceID
	Style   Style
	Lineage LineageID
	// Ordinal is the face's position in the solid's declared face order.
	Ordinal int
}

// EdgeResult is the tessellated polyline of a single edge. Edges that
// produce no visible outline yield no EdgeResult at all.
type EdgeResult struct {
	Polyline []float32
	Edge     EdgeID
	// Ordinal is the edge's position in the solid's declared edge order.
	Ordinal int
}

// MeshResult is the renderable output of one Create call. Faces mirror the
// solid's declared face order; edges arrive in completion order, which is
// acceptable since they are rendered as an unordered aggregate.
type MeshResult struct {
	Faces []FaceResult
	Edges []EdgeResult
}

// TriangleCount returns the total number of triangles across all face grids.
func (m *MeshResult) TriangleCount() int {
	n := 0
	for i := range m.Faces {
		n += len(m.Faces[i].Grid.Indices) / 3
	}
	return n
}

// Digest returns a 64-bit content hash over all index, position, normal and
// polyline buffers. Two results with bit-identical buffers hash equal, which
// is how idempotence across cache hits is asserted and logged.
func (m *MeshResult) Digest() uint64 {
	h := xxhash.New()
	var scratch [4]byte
	for i := range m.Faces {
		g := &m.Faces[i].Grid
		for _, ix := range g.Indices {
			binary.LittleEndian.PutUint32(scratch[:], ix)
			_, _ = h.Write(scratch[:])
		}
		hashFloats(h, g.Positions)
		hashFloats(h, g.Normals)
	}
	// Edge order is unspecified, so fold edge hashes with XOR to keep the
	// digest independent of completion order.
	var edges uint64
	for i := range m.Edges {
		eh := xxhash.New()
		binary.LittleEndian.PutUint32(scratch[:], uint32(m.Edges[i].Ordinal))
		_, _ = eh.Write(scratch[:])
		hashFloats(eh, m.Edges[i].Polyline)
		edges ^= eh.Sum64()
	}
	binary.LittleEndian.PutUint32(scratch[:], uint32(edges))
	_, _ = h.Write(scratch[:])
	binary.LittleEndian.PutUint32(scratch[:], uint32(edges>>32))
	_, _ = h.Write(scratch[:])
	return h.Sum64()
}

func hashFloats(h *xxhash.Digest, buf []float32) {
	var scratch [4]byte
	for _, f := range buf {
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(f))
		_, _ = h.Write(scratch[:])
	}
	_, _ = h.Write([]byte{0})
}
