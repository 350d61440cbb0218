// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/featvet/featvet/internal/adapters/cache"
	_ "github.com/featvet/featvet/internal/adapters/config"
	_ "github.com/featvet/featvet/internal/adapters/logger"
	_ "github.com/featvet/featvet/internal/adapters/manifest"
	_ "github.com/featvet/featvet/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "github.com/featvet/featvet/internal/app"
	_ "github.com/featvet/featvet/internal/engine/runner"
)
