package ports

import "go.trai.ch/facet/internal/core/domain"

// MeshExporter writes tessellation results to a file for one-shot exports.
//
//go:generate go run go.uber.org/mock/mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type MeshExporter interface {
	// Export writes the meshes to the given path. The write is atomic: the
	// target either holds the complete export or its previous content.
	Export(path string, meshes []*domain.MeshResult) error
}
