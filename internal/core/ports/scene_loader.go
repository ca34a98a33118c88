package ports

import "go.trai.ch/facet/internal/core/domain"

// SceneLoader loads a scene description from configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=scene_loader.go -destination=mocks/mock_scene_loader.go -package=mocks
type SceneLoader interface {
	// Load reads and validates the scene file at the given path.
	Load(path string) (*domain.Scene, error)
}
