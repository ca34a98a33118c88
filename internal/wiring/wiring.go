// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/facet/internal/adapters/config"
	_ "go.trai.ch/facet/internal/adapters/export"
	_ "go.trai.ch/facet/internal/adapters/kernel"
	_ "go.trai.ch/facet/internal/adapters/lineage"
	_ "go.trai.ch/facet/internal/adapters/logger"
	_ "go.trai.ch/facet/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/facet/internal/app"
	_ "go.trai.ch/facet/internal/engine/meshcache"
	_ "go.trai.ch/facet/internal/engine/tessellate"
)
