// Package config provides the scene configuration loader for facet.
package config

import (
	"os"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPrecision is applied when an object omits its sag value.
const DefaultPrecision = 0.01

var _ ports.SceneLoader = (*Loader)(nil)

// Loader implements ports.SceneLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the scene file at the given path.
func (l *Loader) Load(path string) (*domain.Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read scene file")
	}

	var file SceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse scene file")
	}

	if len(file.Objects) == 0 {
		return nil, zerr.With(domain.ErrEmptyScene, "path", path)
	}

	scene := &domain.Scene{Objects: make([]domain.SceneObject, 0, len(file.Objects))}
	names := make(map[string]bool, len(file.Objects))
	for _, dto := range file.Objects {
		obj, err := convertObject(dto)
		if err != nil {
			return nil, err
		}
		if names[obj.Name] {
			return nil, zerr.With(zerr.New("duplicate object name"), "name", obj.Name)
		}
		names[obj.Name] = true
		scene.Objects = append(scene.Objects, obj)
	}
	return scene, nil
}

func convertObject(dto ObjectDTO) (domain.SceneObject, error) {
	if dto.Name == "" {
		return domain.SceneObject{}, zerr.New("object name must not be empty")
	}

	kind := domain.ObjectKind(dto.Kind)
	switch kind {
	case domain.KindBox, domain.KindCylinder, domain.KindPanel:
	default:
		err := zerr.With(domain.ErrUnknownObjectKind, "name", dto.Name)
		return domain.SceneObject{}, zerr.With(err, "kind", dto.Kind)
	}

	precision := dto.Precision
	if precision == 0 {
		precision = DefaultPrecision
	}
	if precision < 0 {
		return domain.SceneObject{}, zerr.With(zerr.New("precision must be positive"), "name", dto.Name)
	}

	return domain.SceneObject{
		Name:         dto.Name,
		Kind:         kind,
		X:            dto.X,
		Y:            dto.Y,
		Z:            dto.Z,
		Radius:       dto.Radius,
		Precision:    precision,
		OutlinesOnly: dto.OutlinesOnly,
		Form: domain.FormFlags{
			Quad: dto.Quad,
			Fair: dto.Fair,
		},
	}, nil
}
