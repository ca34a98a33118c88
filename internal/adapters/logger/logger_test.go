package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/facet/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	buf := new(bytes.Buffer)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("scene loaded", "objects", 3)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "scene loaded")
	assert.Contains(t, out, "objects=3")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Warn("lineage unresolved", "face", "face:0000000000000001")

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "lineage unresolved")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(zerr.New("kernel hiccup"))

	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "kernel hiccup")
}
