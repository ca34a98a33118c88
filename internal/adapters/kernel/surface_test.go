package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/facet/internal/core/domain"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestChordSegments(t *testing.T) {
	// A finer sag never yields fewer chords.
	prev := 0
	for _, sag := range []float64{0.5, 0.1, 0.01, 0.001, 0.0001} {
		n := chordSegments(1.0, sag)
		assert.GreaterOrEqual(t, n, prev, "sag %v", sag)
		prev = n
	}

	assert.Equal(t, minArcSegments, chordSegments(1.0, 0))
	assert.Equal(t, minArcSegments, chordSegments(1.0, 2.0), "sag beyond the radius clamps to the floor")
	assert.Equal(t, maxArcSegments, chordSegments(1.0, 1e-9))
}

func TestGridSegments(t *testing.T) {
	assert.Equal(t, 1, gridSegments(1.0, 0))
	assert.Equal(t, 1, gridSegments(0, 0.01))
	assert.Equal(t, maxGridSegments, gridSegments(1e6, 1e-6))

	coarse := gridSegments(1.0, 0.1)
	fine := gridSegments(1.0, 0.0001)
	assert.GreaterOrEqual(t, fine, coarse)
}

func TestPlaneRect_Grid(t *testing.T) {
	p := planeRect{
		origin: r3.Vec{},
		u:      r3.Vec{X: 1},
		v:      r3.Vec{Y: 1},
		du:     1, dv: 1,
		normal: r3.Vec{Z: 1},
	}
	g := p.grid(0.01, domain.FormFlags{})

	n := gridSegments(1, 0.01)
	wantVerts := (n + 1) * (n + 1)
	assert.Len(t, g.Positions, 3*wantVerts)
	assert.Len(t, g.Normals, 3*wantVerts)
	assert.Len(t, g.Indices, 6*n*n)

	// All normals point along +z.
	for i := 0; i < len(g.Normals); i += 3 {
		assert.Equal(t, float32(0), g.Normals[i])
		assert.Equal(t, float32(0), g.Normals[i+1])
		assert.Equal(t, float32(1), g.Normals[i+2])
	}

	// Every index stays inside the vertex buffer.
	for _, ix := range g.Indices {
		assert.Less(t, int(ix), wantVerts)
	}
}

func TestDisk_Grid(t *testing.T) {
	d := disk{center: r3.Vec{Z: 1}, radius: 2, up: true}
	g := d.grid(0.01, domain.FormFlags{})

	n := chordSegments(2, 0.01)
	assert.Len(t, g.Indices, 3*n, "a fan over n chords")
	assert.Len(t, g.Positions, 3*(n+2))

	down := disk{center: r3.Vec{}, radius: 2, up: false}
	gd := down.grid(0.01, domain.FormFlags{})
	assert.Equal(t, float32(-1), gd.Normals[2])
	// Opposite caps wind in opposite directions.
	assert.NotEqual(t, g.Indices[:3], gd.Indices[:3])
}

func TestCylSide_Grid(t *testing.T) {
	c := cylSide{center: r3.Vec{Z: -1}, radius: 1, height: 2}
	g := c.grid(0.01, domain.FormFlags{})

	n := chordSegments(1, 0.01)
	assert.Len(t, g.Positions, 3*2*(n+1))
	assert.Len(t, g.Indices, 6*n)

	// Radial normals have no z component.
	for i := 2; i < len(g.Normals); i += 3 {
		assert.Equal(t, float32(0), g.Normals[i])
	}
}

func TestSegmentAndCircleOutlines(t *testing.T) {
	s := segment{a: r3.Vec{}, b: r3.Vec{X: 1}}
	out := s.outlines(0.01)
	assert.Equal(t, [][]float32{{0, 0, 0, 1, 0, 0}}, out)

	c := circle{center: r3.Vec{Z: 2}, radius: 1}
	n := chordSegments(1, 0.01)
	cout := c.outlines(0.01)
	assert.Len(t, cout, 1)
	assert.Len(t, cout[0], 3*(n+1))
	// The polyline closes on its starting point.
	assert.InDelta(t, cout[0][0], cout[0][len(cout[0])-3], 1e-4)
	assert.InDelta(t, cout[0][1], cout[0][len(cout[0])-2], 1e-4)

	assert.Nil(t, seam{}.outlines(0.01))
}
