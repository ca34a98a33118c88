package domain

// FaceInfo is one face of an enumerated solid together with its display
// attributes and the edges it references. Shared edges appear in the Edges
// list of every face that borders them.
type FaceInfo struct {
	ID    FaceID
	Style Style
	Edges []EdgeID
}

// Topology is the kernel's enumeration of an object. Face and edge order is
// the solid's declared order and is stable for an unchanged object.
type Topology struct {
	// Solid reports whether the object decomposes into faces and edges.
	// Non-solid objects (wires, free surfaces) have no decomposable set and
	// are tessellated as a single task.
	Solid bool
	Faces []FaceInfo
	// Edges lists every edge of the solid exactly once.
	Edges []EdgeID
}

// EdgeOrdinals returns the position of each edge in the declared edge order.
func (t *Topology) EdgeOrdinals() map[EdgeID]int {
	ordinals := make(map[EdgeID]int, len(t.Edges))
	for i, e := range t.Edges {
		ordinals[e] = i
	}
	return ordinals
}
