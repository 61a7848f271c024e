package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grepr/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/grepr/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/grepr/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/grepr/internal/adapters/regex"  //nolint:depguard // Wired in app layer
	"go.trai.ch/grepr/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.OpenerNodeID,
			regex.NodeID,
			linear.NodeID,
		},
		Run: runAppNode,
	})

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

func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.SourceOpener](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.PatternCompiler](ctx)
	if err != nil {
		return nil, err
	}

	printers, err := graft.Dep[ports.PrinterFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, opener, compiler, printers), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
