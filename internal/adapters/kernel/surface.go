package kernel

import (
	"math"

	"github.com/chewxy/math32"
	"go.trai.ch/facet/internal/core/domain"
	"gonum.org/v1/gonum/spatial/r3"
)

// surface generates the triangle grid of one analytic face at a given sag.
type surface interface {
	grid(sag float64, form domain.FormFlags) domain.FaceGrid
}

// curve generates the outline polylines of one analytic edge at a given sag.
// An empty result means the edge has no visible outline.
type curve interface {
	outlines(sag float64) [][]float32
}

const (
	minArcSegments  = 8
	maxArcSegments  = 512
	maxGridSegments = 64
)

// chordSegments returns the number of chords approximating a full circle of
// the given radius so that the chordal deviation stays below sag.
func chordSegments(radius, sag float64) int {
	if sag <= 0 || sag >= radius {
		return minArcSegments
	}
	theta := 2 * math.Acos(1-sag/radius)
	n := int(math.Ceil(2 * math.Pi / theta))
	if n < minArcSegments {
		return minArcSegments
	}
	if n > maxArcSegments {
		return maxArcSegments
	}
	return n
}

// gridSegments returns the subdivision count along a planar extent. Planar
// faces have zero chordal deviation, but the grid still refines with the
// requested sag the way production kernels do, so downstream vertex budgets
// scale consistently.
func gridSegments(extent, sag float64) int {
	if sag <= 0 || extent <= 0 {
		return 1
	}
	n := int(math.Ceil(math.Sqrt(extent/sag) / 4))
	if n < 1 {
		return 1
	}
	if n > maxGridSegments {
		return maxGridSegments
	}
	return n
}

// planeRect is a rectangular planar face spanned by two orthogonal axes.
type planeRect struct {
	origin r3.Vec
	u, v   r3.Vec // unit axes
	du, dv float64
	normal r3.Vec
}

func (p planeRect) grid(sag float64, _ domain.FormFlags) domain.FaceGrid {
	nu := gridSegments(p.du, sag)
	nv := gridSegments(p.dv, sag)

	nx := float32(p.normal.X)
	ny := float32(p.normal.Y)
	nz := float32(p.normal.Z)

	g := domain.FaceGrid{
		Positions: make([]float32, 0, 3*(nu+1)*(nv+1)),
		Normals:   make([]float32, 0, 3*(nu+1)*(nv+1)),
		Indices:   make([]uint32, 0, 6*nu*nv),
	}
	for j := 0; j <= nv; j++ {
		for i := 0; i <= nu; i++ {
			su := p.du * float64(i) / float64(nu)
			sv := p.dv * float64(j) / float64(nv)
			pt := r3.Add(p.origin, r3.Add(r3.Scale(su, p.u), r3.Scale(sv, p.v)))
			g.Positions = append(g.Positions, float32(pt.X), float32(pt.Y), float32(pt.Z))
			g.Normals = append(g.Normals, nx, ny, nz)
		}
	}
	stride := uint32(nu + 1)
	for j := 0; j < nv; j++ {
		for i := 0; i < nu; i++ {
			a := uint32(i) + uint32(j)*stride
			b := a + 1
			c := a + stride
			d := c + 1
			g.Indices = append(g.Indices, a, b, d, a, d, c)
		}
	}
	return g
}

// cylSide is the lateral surface of a z-aligned cylinder centered on the
// origin of its base circle.
type cylSide struct {
	center r3.Vec
	radius float64
	height float64
}

func (c cylSide) grid(sag float64, _ domain.FormFlags) domain.FaceGrid {
	n := chordSegments(c.radius, sag)

	g := domain.FaceGrid{
		Positions: make([]float32, 0, 3*2*(n+1)),
		Normals:   make([]float32, 0, 3*2*(n+1)),
		Indices:   make([]uint32, 0, 6*n),
	}
	cx := float32(c.center.X)
	cy := float32(c.center.Y)
	cz := float32(c.center.Z)
	r := float32(c.radius)
	h := float32(c.height)
	for _, z := range []float32{cz, cz + h} {
		for i := 0; i <= n; i++ {
			phi := 2 * math32.Pi * float32(i) / float32(n)
			dx := math32.Cos(phi)
			dy := math32.Sin(phi)
			g.Positions = append(g.Positions, cx+r*dx, cy+r*dy, z)
			g.Normals = append(g.Normals, dx, dy, 0)
		}
	}
	stride := uint32(n + 1)
	for i := 0; i < n; i++ {
		a := uint32(i)
		b := a + 1
		c := a + stride
		d := c + 1
		g.Indices = append(g.Indices, a, b, d, a, d, c)
	}
	return g
}

// disk is a circular planar cap. up selects the normal direction along z.
type disk struct {
	center r3.Vec
	radius float64
	up     bool
}

func (d disk) grid(sag float64, _ domain.FormFlags) domain.FaceGrid {
	n := chordSegments(d.radius, sag)

	nz := float32(1)
	if !d.up {
		nz = -1
	}
	cx := float32(d.center.X)
	cy := float32(d.center.Y)
	cz := float32(d.center.Z)
	r := float32(d.radius)

	g := domain.FaceGrid{
		Positions: make([]float32, 0, 3*(n+2)),
		Normals:   make([]float32, 0, 3*(n+2)),
		Indices:   make([]uint32, 0, 3*n),
	}
	g.Positions = append(g.Positions, cx, cy, cz)
	g.Normals = append(g.Normals, 0, 0, nz)
	for i := 0; i <= n; i++ {
		phi := 2 * math32.Pi * float32(i) / float32(n)
		g.Positions = append(g.Positions, cx+r*math32.Cos(phi), cy+r*math32.Sin(phi), cz)
		g.Normals = append(g.Normals, 0, 0, nz)
	}
	for i := 1; i <= n; i++ {
		a := uint32(i)
		b := a + 1
		if d.up {
			g.Indices = append(g.Indices, 0, a, b)
		} else {
			g.Indices = append(g.Indices, 0, b, a)
		}
	}
	return g
}

// segment is a straight edge between two points.
type segment struct {
	a, b r3.Vec
}

func (s segment) outlines(_ float64) [][]float32 {
	return [][]float32{{
		float32(s.a.X), float32(s.a.Y), float32(s.a.Z),
		float32(s.b.X), float32(s.b.Y), float32(s.b.Z),
	}}
}

// circle is a full circular edge in a z-plane.
type circle struct {
	center r3.Vec
	radius float64
}

func (c circle) outlines(sag float64) [][]float32 {
	n := chordSegments(c.radius, sag)
	cx := float32(c.center.X)
	cy := float32(c.center.Y)
	cz := float32(c.center.Z)
	r := float32(c.radius)

	pts := make([]float32, 0, 3*(n+1))
	for i := 0; i <= n; i++ {
		phi := 2 * math32.Pi * float32(i) / float32(n)
		pts = append(pts, cx+r*math32.Cos(phi), cy+r*math32.Sin(phi), cz)
	}
	return [][]float32{pts}
}

// seam is a parameterization seam. It bounds a face but is never visible,
// so it produces no outline.
type seam struct{}

func (seam) outlines(_ float64) [][]float32 {
	return nil
}

// rectOutline is the closed rectangular boundary of a free surface.
type rectOutline struct {
	corners [4]r3.Vec
}

func (o rectOutline) outlines(_ float64) [][]float32 {
	pts := make([]float32, 0, 3*5)
	for i := 0; i <= 4; i++ {
		c := o.corners[i%4]
		pts = append(pts, float32(c.X), float32(c.Y), float32(c.Z))
	}
	return [][]float32{pts}
}
