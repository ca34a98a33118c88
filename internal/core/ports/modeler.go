package ports

import "go.trai.ch/facet/internal/core/domain"

// Modeler builds kernel objects from scene descriptions. It is implemented
// by the same adapter as GeometryKernel; the split keeps the tessellation
// contract free of construction concerns.
//
//go:generate go run go.uber.org/mock/mockgen -source=modeler.go -destination=mocks/mock_modeler.go -package=mocks
type Modeler interface {
	// CreateObject builds the described object and returns its identity.
	CreateObject(obj domain.SceneObject) (domain.ObjectID, error)
}
