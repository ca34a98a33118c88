// Package export writes tessellation results to disk.
package export

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ ports.MeshExporter = (*STLExporter)(nil)

// STLExporter implements ports.MeshExporter producing binary STL.
type STLExporter struct{}

// NewSTLExporter creates a new STLExporter.
func NewSTLExporter() *STLExporter {
	return &STLExporter{}
}

// Export writes all face grids to a single binary STL file. The file is
// written to a temporary sibling first and renamed into place so readers
// never observe a partial export.
func (e *STLExporter) Export(path string, meshes []*domain.MeshResult) error {
	total := 0
	for _, m := range meshes {
		total += m.TriangleCount()
	}
	if total == 0 {
		return zerr.With(zerr.New("nothing to export"), "path", path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "facet-stl-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp export file")
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	w := bufio.NewWriter(tmp)
	if err := writeSTL(w, meshes, total); err != nil {
		cleanup()
		return zerr.Wrap(err, "failed to write export")
	}
	if err := w.Flush(); err != nil {
		cleanup()
		return zerr.Wrap(err, "failed to flush export")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to close export file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to move export into place")
	}
	return nil
}

// stlHeader defines the binary STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

func writeSTL(w io.Writer, meshes []*domain.MeshResult, total int) error {
	header := stlHeader{Count: uint32(total)} //nolint:gosec // triangle counts stay far below 2^32
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	for _, m := range meshes {
		for i := range m.Faces {
			if err := writeGrid(w, &m.Faces[i].Grid); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeGrid(w io.Writer, g *domain.FaceGrid) error {
	var b [50]byte
	for t := 0; t+2 < len(g.Indices); t += 3 {
		v0 := vertex(g, g.Indices[t])
		v1 := vertex(g, g.Indices[t+1])
		v2 := vertex(g, g.Indices[t+2])
		n := r3.Unit(r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0)))
		if math.IsNaN(n.X) {
			// Degenerate triangle, emit a zero normal.
			n = r3.Vec{}
		}
		putVec(b[0:], n)
		putVec(b[12:], v0)
		putVec(b[24:], v1)
		putVec(b[36:], v2)
		binary.LittleEndian.PutUint16(b[48:], 0)
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

func vertex(g *domain.FaceGrid, ix uint32) r3.Vec {
	p := g.Positions[3*ix : 3*ix+3]
	return r3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

func putVec(b []byte, v r3.Vec) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}
