package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/facet/internal/adapters/config"
	"go.trai.ch/facet/internal/core/domain"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeScene(t, `
version: "1"
objects:
  - name: housing
    kind: box
    x: 2
    y: 1
    z: 0.5
    precision: 0.005
    quad: true
  - name: shaft
    kind: cylinder
    radius: 0.25
    z: 3
    outlinesOnly: true
`)

	scene, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, scene.Objects, 2)

	housing := scene.Objects[0]
	assert.Equal(t, "housing", housing.Name)
	assert.Equal(t, domain.KindBox, housing.Kind)
	assert.Equal(t, 0.005, housing.Precision)
	assert.True(t, housing.Form.Quad)
	assert.False(t, housing.OutlinesOnly)

	shaft := scene.Objects[1]
	assert.Equal(t, domain.KindCylinder, shaft.Kind)
	assert.True(t, shaft.OutlinesOnly)
	assert.Equal(t, config.DefaultPrecision, shaft.Precision, "omitted precision falls back to the default")
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scene file")
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	path := writeScene(t, "objects: [broken")
	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scene file")
}

func TestLoader_Load_EmptyScene(t *testing.T) {
	path := writeScene(t, `objects: []`)
	// zerr.With detaches the sentinel from the chain, so assert on the
	// message rather than with ErrorIs.
	_, err := config.NewLoader().Load(path)
	assert.ErrorContains(t, err, domain.ErrEmptyScene.Error())
}

func TestLoader_Load_UnknownKind(t *testing.T) {
	path := writeScene(t, `
objects:
  - name: blob
    kind: sphere
`)
	_, err := config.NewLoader().Load(path)
	assert.ErrorContains(t, err, domain.ErrUnknownObjectKind.Error())
}

func TestLoader_Load_DuplicateName(t *testing.T) {
	path := writeScene(t, `
objects:
  - name: a
    kind: box
    x: 1
    y: 1
    z: 1
  - name: a
    kind: box
    x: 1
    y: 1
    z: 1
`)
	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate object name")
}

func TestLoader_Load_NegativePrecision(t *testing.T) {
	path := writeScene(t, `
objects:
  - name: a
    kind: box
    x: 1
    y: 1
    z: 1
    precision: -0.1
`)
	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precision must be positive")
}
