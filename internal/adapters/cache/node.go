package cache

import (
	"context"

	"github.com/featvet/featvet/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the combination store Graft node.
const NodeID graft.ID = "adapter.combination_store"

func init() {
	graft.Register(graft.Node[ports.CombinationStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CombinationStore, error) {
			return NewStore(), nil
		},
	})
}
