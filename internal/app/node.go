package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/facet/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/facet/internal/adapters/export"             //nolint:depguard // Wired in app layer
	"go.trai.ch/facet/internal/adapters/kernel"             //nolint:depguard // Wired in app layer
	"go.trai.ch/facet/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/facet/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/facet/internal/engine/meshcache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			kernel.ModelerNodeID,
			meshcache.NodeID,
			export.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SceneLoader](ctx)
	if err != nil {
		return nil, err
	}

	modeler, err := graft.Dep[ports.Modeler](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*meshcache.Builder](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.MeshExporter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, modeler, builder, exporter, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Tracer: tracer,
	}, nil
}
