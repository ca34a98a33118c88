package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/facet/cmd/facet/commands"
	"go.trai.ch/facet/internal/app"
	"go.trai.ch/facet/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.Options) error
}

func (m *mockApp) Run(ctx context.Context, opts app.Options) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Mesh(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.Options
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.Options) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"mesh", "scene.yaml", "--no-cache", "--stl", "out.stl", "--passes", "3"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "scene.yaml", captured.ScenePath)
		assert.Equal(t, "out.stl", captured.STLPath)
		assert.True(t, captured.NoCache)
		assert.Equal(t, 3, captured.Passes)
	})

	t.Run("defaults to facet.yaml", func(t *testing.T) {
		var captured app.Options
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.Options) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"mesh"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "facet.yaml", captured.ScenePath)
		assert.False(t, captured.NoCache)
		assert.Equal(t, 1, captured.Passes)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.Options) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"mesh"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
