package lineage

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the lineage tracker Graft node. The
// node exposes the concrete Tracker so the kernel adapter can bind entries;
// consumers that only read depend on it through ports.LineageTracker.
const NodeID graft.ID = "adapter.lineage"

func init() {
	graft.Register(graft.Node[*Tracker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Tracker, error) {
			return NewTracker(), nil
		},
	})
}
