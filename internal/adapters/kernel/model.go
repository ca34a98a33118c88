package kernel

import (
	"gonum.org/v1/gonum/spatial/r3"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/zerr"
)

// CreateObject builds the described primitive and returns its identity.
// Every face receives a fresh lineage binding in the tracker.
func (k *Kernel) CreateObject(desc domain.SceneObject) (domain.ObjectID, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	obj := &object{id: domain.ObjectID(k.nextID())}

	var err error
	switch desc.Kind {
	case domain.KindBox:
		err = k.buildBox(obj, desc)
	case domain.KindCylinder:
		err = k.buildCylinder(obj, desc)
	case domain.KindPanel:
		err = k.buildPanel(obj, desc)
	default:
		return 0, zerr.With(domain.ErrUnknownObjectKind, "kind", string(desc.Kind))
	}
	if err != nil {
		return 0, err
	}

	k.objects[obj.id] = obj
	for _, f := range obj.faces {
		k.faces[f.id] = f
		k.lineages.Bind(f.id, domain.LineageID(k.nextID()))
	}
	for _, e := range obj.edges {
		k.edges[e.id] = e
	}
	return obj.id, nil
}

func (k *Kernel) newFace(surf surface, style domain.Style, edges ...*edge) *face {
	ids := make([]domain.EdgeID, len(edges))
	for i, e := range edges {
		ids[i] = e.id
	}
	return &face{
		id:    domain.FaceID(k.nextID()),
		style: style,
		surf:  surf,
		edges: ids,
	}
}

func (k *Kernel) newEdge(c curve) *edge {
	return &edge{id: domain.EdgeID(k.nextID()), curve: c}
}

// buildBox constructs an axis-aligned box centered on the origin: 6 planar
// faces in the declared order -x, +x, -y, +y, -z, +z and 12 straight edges,
// each shared by exactly two faces.
func (k *Kernel) buildBox(obj *object, desc domain.SceneObject) error {
	if desc.X <= 0 || desc.Y <= 0 || desc.Z <= 0 {
		return zerr.With(zerr.New("box extents must be positive"), "name", desc.Name)
	}

	hx, hy, hz := desc.X/2, desc.Y/2, desc.Z/2
	corner := func(i, j, l int) r3.Vec {
		return r3.Vec{
			X: -hx + float64(i)*desc.X,
			Y: -hy + float64(j)*desc.Y,
			Z: -hz + float64(l)*desc.Z,
		}
	}

	// Edge families: xe varies x at (y=j, z=l), ye varies y, ze varies z.
	var xe, ye, ze [2][2]*edge
	for j := 0; j < 2; j++ {
		for l := 0; l < 2; l++ {
			xe[j][l] = k.newEdge(segment{a: corner(0, j, l), b: corner(1, j, l)})
		}
	}
	for i := 0; i < 2; i++ {
		for l := 0; l < 2; l++ {
			ye[i][l] = k.newEdge(segment{a: corner(i, 0, l), b: corner(i, 1, l)})
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			ze[i][j] = k.newEdge(segment{a: corner(i, j, 0), b: corner(i, j, 1)})
		}
	}

	axisX := r3.Vec{X: 1}
	axisY := r3.Vec{Y: 1}
	axisZ := r3.Vec{Z: 1}

	obj.solid = true
	obj.faces = []*face{
		k.newFace(
			planeRect{origin: corner(0, 0, 0), u: axisY, v: axisZ, du: desc.Y, dv: desc.Z, normal: r3.Scale(-1, axisX)},
			styleFor(desc.Kind, 0),
			ye[0][0], ye[0][1], ze[0][0], ze[0][1],
		),
		k.newFace(
			planeRect{origin: corner(1, 0, 0), u: axisY, v: axisZ, du: desc.Y, dv: desc.Z, normal: axisX},
			styleFor(desc.Kind, 1),
			ye[1][0], ye[1][1], ze[1][0], ze[1][1],
		),
		k.newFace(
			planeRect{origin: corner(0, 0, 0), u: axisX, v: axisZ, du: desc.X, dv: desc.Z, normal: r3.Scale(-1, axisY)},
			styleFor(desc.Kind, 2),
			xe[0][0], xe[0][1], ze[0][0], ze[1][0],
		),
		k.newFace(
			planeRect{origin: corner(0, 1, 0), u: axisX, v: axisZ, du: desc.X, dv: desc.Z, normal: axisY},
			styleFor(desc.Kind, 3),
			xe[1][0], xe[1][1], ze[0][1], ze[1][1],
		),
		k.newFace(
			planeRect{origin: corner(0, 0, 0), u: axisX, v: axisY, du: desc.X, dv: desc.Y, normal: r3.Scale(-1, axisZ)},
			styleFor(desc.Kind, 4),
			xe[0][0], xe[1][0], ye[0][0], ye[1][0],
		),
		k.newFace(
			planeRect{origin: corner(0, 0, 1), u: axisX, v: axisY, du: desc.X, dv: desc.Y, normal: axisZ},
			styleFor(desc.Kind, 5),
			xe[0][1], xe[1][1], ye[0][1], ye[1][1],
		),
	}
	obj.edges = []*edge{
		xe[0][0], xe[1][0], xe[0][1], xe[1][1],
		ye[0][0], ye[1][0], ye[0][1], ye[1][1],
		ze[0][0], ze[1][0], ze[0][1], ze[1][1],
	}
	return nil
}

// buildCylinder constructs a z-aligned capped cylinder centered on the
// origin: lateral face, bottom cap, top cap. The two rim circles are each
// shared between the lateral face and a cap; the lateral parameterization
// seam bounds only the lateral face and produces no outline.
func (k *Kernel) buildCylinder(obj *object, desc domain.SceneObject) error {
	if desc.Radius <= 0 || desc.Z <= 0 {
		return zerr.With(zerr.New("cylinder radius and height must be positive"), "name", desc.Name)
	}

	base := r3.Vec{Z: -desc.Z / 2}
	top := r3.Vec{Z: desc.Z / 2}

	bottomRim := k.newEdge(circle{center: base, radius: desc.Radius})
	topRim := k.newEdge(circle{center: top, radius: desc.Radius})
	sideSeam := k.newEdge(seam{})

	obj.solid = true
	obj.faces = []*face{
		k.newFace(
			cylSide{center: base, radius: desc.Radius, height: desc.Z},
			styleFor(desc.Kind, 0),
			bottomRim, topRim, sideSeam,
		),
		k.newFace(
			disk{center: base, radius: desc.Radius, up: false},
			styleFor(desc.Kind, 1),
			bottomRim,
		),
		k.newFace(
			disk{center: top, radius: desc.Radius, up: true},
			styleFor(desc.Kind, 2),
			topRim,
		),
	}
	obj.edges = []*edge{bottomRim, topRim, sideSeam}
	return nil
}

// buildPanel constructs a free rectangular surface in the xy-plane. It is
// not a solid; tessellation goes through the single-task object path.
func (k *Kernel) buildPanel(obj *object, desc domain.SceneObject) error {
	if desc.X <= 0 || desc.Y <= 0 {
		return zerr.With(zerr.New("panel extents must be positive"), "name", desc.Name)
	}

	hx, hy := desc.X/2, desc.Y/2
	outline := rectOutline{corners: [4]r3.Vec{
		{X: -hx, Y: -hy},
		{X: hx, Y: -hy},
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
	}}

	boundary := k.newEdge(outline)
	obj.solid = false
	obj.faces = []*face{
		k.newFace(
			planeRect{origin: r3.Vec{X: -hx, Y: -hy}, u: r3.Vec{X: 1}, v: r3.Vec{Y: 1}, du: desc.X, dv: desc.Y, normal: r3.Vec{Z: 1}},
			styleFor(desc.Kind, 0),
			boundary,
		),
	}
	obj.edges = []*edge{boundary}
	return nil
}

// styleFor derives the opaque display-style token of a face from the object
// kind and the face's declared ordinal.
func styleFor(kind domain.ObjectKind, ordinal int) domain.Style {
	base := map[domain.ObjectKind]uint32{
		domain.KindBox:      0x100,
		domain.KindCylinder: 0x200,
		domain.KindPanel:    0x300,
	}[kind]
	return domain.Style(base | uint32(ordinal))
}
