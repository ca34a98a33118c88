package domain

import "go.trai.ch/zerr"

var (
	// ErrObjectNotFound is returned when a request names an object the
	// kernel does not know.
	ErrObjectNotFound = zerr.New("object not found")

	// ErrFaceNotFound is returned when a tessellation call names a face the
	// kernel does not know.
	ErrFaceNotFound = zerr.New("face not found")

	// ErrEdgeNotFound is returned when a tessellation call names an edge the
	// kernel does not know.
	ErrEdgeNotFound = zerr.New("edge not found")

	// ErrOutsideRegion is returned when a tessellation primitive is invoked
	// without the parallel region held. This is an integration error, not a
	// recoverable condition.
	ErrOutsideRegion = zerr.New("kernel call outside parallel region")

	// ErrUnknownObjectKind is returned by the scene loader for an
	// unrecognized object kind.
	ErrUnknownObjectKind = zerr.New("unknown object kind")

	// ErrEmptyScene is returned when a scene file defines no objects.
	ErrEmptyScene = zerr.New("scene defines no objects")
)
