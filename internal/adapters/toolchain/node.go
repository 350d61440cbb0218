package toolchain

import (
	"context"

	"github.com/featvet/featvet/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// CheckerNodeID is the unique identifier for the checker Graft node.
	CheckerNodeID graft.ID = "adapter.checker"
	// BuilderNodeID is the unique identifier for the builder Graft node.
	BuilderNodeID graft.ID = "adapter.builder"
)

func init() {
	graft.Register(graft.Node[ports.Checker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Checker, error) {
			return NewCargo(), nil
		},
	})

	graft.Register(graft.Node[ports.Builder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Builder, error) {
			return NewCargo(), nil
		},
	})
}
