package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/facet/internal/adapters/kernel"
	"go.trai.ch/facet/internal/adapters/lineage"
	"go.trai.ch/facet/internal/adapters/telemetry"
	"go.trai.ch/facet/internal/app"
	"go.trai.ch/facet/internal/core/ports/mocks"
	"go.trai.ch/facet/internal/engine/meshcache"
	"go.trai.ch/facet/internal/engine/tessellate"
	"go.uber.org/mock/gomock"
)

func testComponents(ctrl *gomock.Controller, loader *mocks.MockSceneLoader) *app.Components {
	tracker := lineage.NewTracker()
	k := kernel.New(tracker)
	mesher := tessellate.NewParallelMesher(k, tracker)
	builder := meshcache.NewBuilder(mesher, mesher.Basic(), k, tracker)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	exporter := mocks.NewMockMeshExporter(ctrl)
	tracer := telemetry.NewNoOpTracer()

	return &app.Components{
		App:    app.New(loader, k, builder, exporter, tracer, logger),
		Logger: logger,
		Tracer: tracer,
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockSceneLoader(ctrl)
	components := testComponents(ctrl, loader)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockSceneLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("load failed"))
	components := testComponents(ctrl, loader)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"mesh", "missing.yaml"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
