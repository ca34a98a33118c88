package ports

import "go.trai.ch/facet/internal/core/domain"

// LineageTracker resolves the stable identity of a face across kernel
// copy-on-edit operations. A face is cache-eligible only when its lineage
// resolves.
//
//go:generate go run go.uber.org/mock/mockgen -source=lineage.go -destination=mocks/mock_lineage.go -package=mocks
type LineageTracker interface {
	// LineageOf returns the lineage id of the face's current kernel
	// identity, or false when no lineage is resolvable.
	LineageOf(face domain.FaceID) (domain.LineageID, bool)
}
