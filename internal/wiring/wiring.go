// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/grepr/internal/adapters/fs"
	_ "go.trai.ch/grepr/internal/adapters/linear"
	_ "go.trai.ch/grepr/internal/adapters/logger"
	_ "go.trai.ch/grepr/internal/adapters/regex"
	// Register app nodes.
	_ "go.trai.ch/grepr/internal/app"
)
