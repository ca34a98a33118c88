package tessellate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/facet/internal/adapters/kernel"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/facet/internal/adapters/lineage" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/facet/internal/core/ports"
)

// NodeID is the unique identifier for the parallel mesher Graft node.
const NodeID graft.ID = "engine.tessellate"

func init() {
	graft.Register(graft.Node[*ParallelMesher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			kernel.NodeID,
			lineage.NodeID,
		},
		Run: func(ctx context.Context) (*ParallelMesher, error) {
			k, err := graft.Dep[ports.GeometryKernel](ctx)
			if err != nil {
				return nil, err
			}

			tracker, err := graft.Dep[*lineage.Tracker](ctx)
			if err != nil {
				return nil, err
			}

			return NewParallelMesher(k, tracker), nil
		},
	})
}
