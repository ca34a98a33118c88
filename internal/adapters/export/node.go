package export

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/facet/internal/core/ports"
)

// NodeID is the unique identifier for the mesh exporter Graft node.
const NodeID graft.ID = "adapter.export"

func init() {
	graft.Register(graft.Node[ports.MeshExporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MeshExporter, error) {
			return NewSTLExporter(), nil
		},
	})
}
