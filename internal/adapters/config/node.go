package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/facet/internal/core/ports"
)

// NodeID is the unique identifier for the scene loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.SceneLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SceneLoader, error) {
			return NewLoader(), nil
		},
	})
}
