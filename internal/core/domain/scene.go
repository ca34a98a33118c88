package domain

// ObjectKind selects the analytic primitive a scene object is built from.
type ObjectKind string

const (
	// KindBox is a rectangular solid: 6 planar faces, 12 straight edges.
	KindBox ObjectKind = "box"
	// KindCylinder is a capped cylinder: 3 faces, 2 circular edges.
	KindCylinder ObjectKind = "cylinder"
	// KindPanel is a free rectangular surface. It is not a solid and is
	// tessellated as a single task.
	KindPanel ObjectKind = "panel"
)

// SceneObject describes one object of a scene before it is built in the
// kernel. Dimensions are interpreted per kind: box uses X/Y/Z extents,
// cylinder uses Radius and Z, panel uses X/Y.
type SceneObject struct {
	Name         string
	Kind         ObjectKind
	X, Y, Z      float64
	Radius       float64
	Precision    float64
	OutlinesOnly bool
	Form         FormFlags
}

// Scene is the loaded content of a scene configuration file.
type Scene struct {
	Objects []SceneObject
}
