package runner

import (
	"context"

	"github.com/featvet/featvet/internal/adapters/toolchain" //nolint:depguard // Wired in engine wiring
	"github.com/featvet/featvet/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			toolchain.CheckerNodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			checker, err := graft.Dep[ports.Checker](ctx)
			if err != nil {
				return nil, err
			}

			return New(checker), nil
		},
	})
}
