package app

import (
	"context"

	"github.com/featvet/featvet/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"github.com/featvet/featvet/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/featvet/featvet/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/featvet/featvet/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"github.com/featvet/featvet/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"github.com/featvet/featvet/internal/core/ports"
	"github.com/featvet/featvet/internal/engine/runner"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			cache.NodeID,
			toolchain.BuilderNodeID,
			runner.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.DependencyExtractor](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CombinationStore](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[ports.Builder](ctx)
			if err != nil {
				return nil, err
			}

			run, err := graft.Dep[*runner.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, extractor, store, builder, run, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
