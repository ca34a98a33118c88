package app

import (
	"go.trai.ch/facet/internal/core/ports"
)

// Components contains the initialized application components the CLI layer
// needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}
