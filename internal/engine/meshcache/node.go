package meshcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/facet/internal/adapters/kernel"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/facet/internal/adapters/lineage" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/facet/internal/engine/tessellate"
)

// NodeID is the unique identifier for the session builder Graft node.
const NodeID graft.ID = "engine.meshcache"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tessellate.NodeID,
			kernel.NodeID,
			lineage.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			mesher, err := graft.Dep[*tessellate.ParallelMesher](ctx)
			if err != nil {
				return nil, err
			}

			k, err := graft.Dep[ports.GeometryKernel](ctx)
			if err != nil {
				return nil, err
			}

			tracker, err := graft.Dep[*lineage.Tracker](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(mesher, mesher.Basic(), k, tracker), nil
		},
	})
}
