// Package app implements the application layer for facet.
package app

import (
	"context"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/facet/internal/engine/meshcache"
	"go.trai.ch/zerr"
)

// Options controls one tessellation run.
type Options struct {
	// ScenePath is the path of the scene file to load.
	ScenePath string
	// STLPath, when set, exports all face grids to a binary STL file.
	STLPath string
	// NoCache bypasses the caching session and tessellates every object
	// against the bare parallel strategy.
	NoCache bool
	// Passes is how many times each object is redrawn within the session.
	// Passes beyond the first are served from cache when nothing changed.
	Passes int
}

// App represents the main application logic: load a scene, build its
// objects, and tessellate them inside a caching session.
type App struct {
	loader  ports.SceneLoader
	modeler ports.Modeler
	builder *meshcache.Builder
	export  ports.MeshExporter
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.SceneLoader,
	modeler ports.Modeler,
	builder *meshcache.Builder,
	export ports.MeshExporter,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		loader:  loader,
		modeler: modeler,
		builder: builder,
		export:  export,
		tracer:  tracer,
		logger:  logger,
	}
}

type sceneObject struct {
	name string
	req  domain.MeshRequest
}

// Run executes the tessellation process for the given options.
func (a *App) Run(ctx context.Context, opts Options) error {
	scene, err := a.loader.Load(opts.ScenePath)
	if err != nil {
		return zerr.Wrap(err, "failed to load scene")
	}

	objects := make([]sceneObject, 0, len(scene.Objects))
	for _, desc := range scene.Objects {
		id, err := a.modeler.CreateObject(desc)
		if err != nil {
			return zerr.Wrap(err, "failed to build object")
		}
		objects = append(objects, sceneObject{
			name: desc.Name,
			req: domain.MeshRequest{
				Object:       id,
				Precision:    desc.Precision,
				Form:         desc.Form,
				OutlinesOnly: desc.OutlinesOnly,
			},
		})
	}
	a.logger.Info("scene loaded", "objects", len(objects))

	passes := opts.Passes
	if passes < 1 {
		passes = 1
	}

	var results []*domain.MeshResult
	if opts.NoCache {
		err = a.builder.WithoutCaching(func(mesher ports.Mesher) error {
			var runErr error
			results, runErr = a.tessellate(ctx, mesher, nil, objects, passes)
			return runErr
		})
	} else {
		err = a.builder.WithCaching(func(session *meshcache.Session) error {
			hits := func() uint64 { return session.Stats().Objects.Hits }
			var runErr error
			results, runErr = a.tessellate(ctx, session, hits, objects, passes)
			if runErr != nil {
				return runErr
			}
			stats := session.Stats()
			a.logger.Info("session finished",
				"objectHits", stats.Objects.Hits,
				"objectMisses", stats.Objects.Misses,
				"faceHits", stats.Faces.FaceHits,
				"faceMisses", stats.Faces.FaceMisses,
			)
			return nil
		})
	}
	if err != nil {
		return zerr.Wrap(err, "tessellation failed")
	}

	if opts.STLPath != "" {
		if err := a.export.Export(opts.STLPath, results); err != nil {
			return zerr.Wrap(err, "export failed")
		}
		a.logger.Info("exported", "path", opts.STLPath)
	}
	return nil
}

// tessellate redraws every object the given number of passes and returns the
// results of the final pass in scene order. hits, when non-nil, reports the
// cumulative whole-object hit counter so served-from-cache redraws can be
// marked on their vertex.
func (a *App) tessellate(ctx context.Context, mesher ports.Mesher, hits func() uint64, objects []sceneObject, passes int) ([]*domain.MeshResult, error) {
	results := make([]*domain.MeshResult, len(objects))
	for pass := 0; pass < passes; pass++ {
		for i := range objects {
			obj := &objects[i]
			_, vtx := a.tracer.Record(ctx, obj.name)
			var before uint64
			if hits != nil {
				before = hits()
			}
			mesh, err := mesher.Create(ctx, &obj.req)
			if err != nil {
				vtx.Complete(err)
				return nil, zerr.With(err, "object", obj.name)
			}
			if hits != nil && hits() > before {
				vtx.Cached()
			}
			vtx.Logf("triangles=%d digest=%016x", mesh.TriangleCount(), mesh.Digest())
			vtx.Complete(nil)
			results[i] = mesh
		}
	}
	return results, nil
}
