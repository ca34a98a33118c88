package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/facet/internal/core/domain"
)

func TestMeshRequest_Key(t *testing.T) {
	a := domain.MeshRequest{Object: 7, Precision: 0.01}
	b := domain.MeshRequest{Object: 7, Precision: 0.01}
	c := domain.MeshRequest{Object: 7, Precision: 0.001}
	d := domain.MeshRequest{Object: 8, Precision: 0.01}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key(), d.Key())

	// Form flags and the outline filter do not partition the key.
	e := domain.MeshRequest{Object: 7, Precision: 0.01, Form: domain.FormFlags{Quad: true}, OutlinesOnly: true}
	assert.Equal(t, a.Key(), e.Key())
}

func TestObjectMeshKey_String(t *testing.T) {
	key := domain.ObjectMeshKey{Object: 0xab, Precision: 0xcd}
	assert.Equal(t, "00000000000000ab@00000000000000cd", key.String())
}

func TestMeshResult_TriangleCount(t *testing.T) {
	res := &domain.MeshResult{
		Faces: []domain.FaceResult{
			{Grid: domain.FaceGrid{Indices: []uint32{0, 1, 2, 0, 2, 3}}},
			{Grid: domain.FaceGrid{Indices: []uint32{0, 1, 2}}},
		},
	}
	assert.Equal(t, 3, res.TriangleCount())
}

func TestMeshResult_Digest(t *testing.T) {
	face := domain.FaceResult{Grid: domain.FaceGrid{
		Indices:   []uint32{0, 1, 2},
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
	}}
	e1 := domain.EdgeResult{Polyline: []float32{0, 0, 0, 1, 0, 0}, Ordinal: 0}
	e2 := domain.EdgeResult{Polyline: []float32{1, 0, 0, 1, 1, 0}, Ordinal: 1}

	a := &domain.MeshResult{Faces: []domain.FaceResult{face}, Edges: []domain.EdgeResult{e1, e2}}
	b := &domain.MeshResult{Faces: []domain.FaceResult{face}, Edges: []domain.EdgeResult{e2, e1}}

	// Edge completion order must not influence the digest.
	assert.Equal(t, a.Digest(), b.Digest())

	mutated := &domain.MeshResult{
		Faces: []domain.FaceResult{{Grid: domain.FaceGrid{
			Indices:   []uint32{0, 1, 2},
			Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 1},
			Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		}}},
		Edges: []domain.EdgeResult{e1, e2},
	}
	assert.NotEqual(t, a.Digest(), mutated.Digest())
}

func TestTopology_EdgeOrdinals(t *testing.T) {
	topo := &domain.Topology{Edges: []domain.EdgeID{40, 41, 42}}
	ordinals := topo.EdgeOrdinals()
	assert.Equal(t, 0, ordinals[40])
	assert.Equal(t, 1, ordinals[41])
	assert.Equal(t, 2, ordinals[42])
}
