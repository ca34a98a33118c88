package domain

import "fmt"

// ObjectID identifies a kernel object (solid, surface, wire body). The value
// is opaque to this layer; only equality and ordering are meaningful.
type ObjectID uint64

// FaceID identifies a face of a solid in its current kernel state. A kernel
// copy-on-edit invalidates the FaceID but not the face's lineage.
type FaceID uint64

// EdgeID identifies an edge of a solid in its current kernel state.
type EdgeID uint64

// LineageID identifies a face across kernel copy-on-edit operations. It is
// assigned by the lineage tracker and survives as long as the face's identity
// does, making it the stable key for per-face mesh caching.
type LineageID uint64

// String returns the hex form used in logs and telemetry vertex names.
func (id ObjectID) String() string { return fmt.Sprintf("obj:%016x", uint64(id)) }

func (id FaceID) String() string { return fmt.Sprintf("face:%016x", uint64(id)) }

func (id EdgeID) String() string { return fmt.Sprintf("edge:%016x", uint64(id)) }

func (id LineageID) String() string { return fmt.Sprintf("lin:%016x", uint64(id)) }
