package config

// SceneFile represents the structure of the facet.yaml scene file.
type SceneFile struct {
	Version string      `yaml:"version"`
	Objects []ObjectDTO `yaml:"objects"`
}

// ObjectDTO represents one object definition in the scene file.
type ObjectDTO struct {
	Name         string  `yaml:"name"`
	Kind         string  `yaml:"kind"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Z            float64 `yaml:"z"`
	Radius       float64 `yaml:"radius"`
	Precision    float64 `yaml:"precision"`
	OutlinesOnly bool    `yaml:"outlinesOnly"`
	Quad         bool    `yaml:"quad"`
	Fair         bool    `yaml:"fair"`
}
