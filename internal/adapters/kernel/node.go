package kernel

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/facet/internal/adapters/lineage"
	"go.trai.ch/facet/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the kernel adapter Graft node. The
// node is registered as the GeometryKernel port; the same instance also
// serves the Modeler port through ModelerNodeID.
const (
	NodeID        graft.ID = "adapter.kernel"
	ModelerNodeID graft.ID = "adapter.kernel.modeler"
)

func init() {
	graft.Register(graft.Node[ports.GeometryKernel]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lineage.NodeID,
		},
		Run: func(ctx context.Context) (ports.GeometryKernel, error) {
			tracker, err := graft.Dep[*lineage.Tracker](ctx)
			if err != nil {
				return nil, err
			}
			return New(tracker), nil
		},
	})

	graft.Register(graft.Node[ports.Modeler]{
		ID:        ModelerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
		},
		Run: func(ctx context.Context) (ports.Modeler, error) {
			k, err := graft.Dep[ports.GeometryKernel](ctx)
			if err != nil {
				return nil, err
			}
			modeler, ok := k.(ports.Modeler)
			if !ok {
				return nil, zerr.New("kernel does not implement the modeler port")
			}
			return modeler, nil
		},
	})
}
