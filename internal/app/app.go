// Package app implements the application layer for grepr.
package app

import (
	"context"
	"io"

	"go.trai.ch/grepr/internal/core/domain"
	"go.trai.ch/grepr/internal/core/ports"
	"go.trai.ch/grepr/internal/engine/filter"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver ports.PathResolver
	opener   ports.SourceOpener
	compiler ports.PatternCompiler
	printers ports.PrinterFactory
}

// New creates a new App instance.
func New(
	resolver ports.PathResolver,
	opener ports.SourceOpener,
	compiler ports.PatternCompiler,
	printers ports.PrinterFactory,
) *App {
	return &App{
		resolver: resolver,
		opener:   opener,
		compiler: compiler,
		printers: printers,
	}
}

// Run searches every target described by cfg, writing results to stdout and per-target
// failures to stderr. Only an invalid pattern, an output write failure or cancellation of ctx
// make it return an error.
func (a *App) Run(ctx context.Context, cfg domain.Config, stdout, stderr io.Writer) error {
	// 1. Compile the pattern before touching any input
	matcher, err := a.compiler.Compile(cfg.Pattern, cfg.Insensitive)
	if err != nil {
		return err
	}

	// 2. Resolve all inputs once
	paths := cfg.Paths
	if len(paths) == 0 {
		paths = domain.DefaultPaths()
	}
	targets := a.resolver.Resolve(paths, cfg.Recursive)

	// 3. Search each target in order
	printer := a.printers.NewPrinter(stdout, stderr, len(targets) > 1)
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "search interrupted")
		}

		if !target.OK() {
			printer.Failure(target.Err)
			continue
		}

		if err := a.search(target.Path, matcher, cfg, printer); err != nil {
			return err
		}
	}

	return nil
}

// search filters a single target. Open and read failures are reported through the printer;
// only write failures are returned.
func (a *App) search(path string, m domain.Matcher, cfg domain.Config, printer ports.Printer) error {
	src, err := a.opener.Open(path)
	if err != nil {
		printer.Failure(domain.NewPathError(path, err))
		return nil
	}

	if cfg.CountOnly {
		n, err := filter.Count(src, m, cfg.InvertMatch)
		_ = src.Close()
		if err != nil {
			printer.Failure(domain.NewPathError(path, err))
			return nil
		}
		return printer.Count(path, n)
	}

	lines, err := filter.Lines(src, m, cfg.InvertMatch)
	_ = src.Close()
	if err != nil {
		printer.Failure(domain.NewPathError(path, err))
		return nil
	}

	for _, line := range lines {
		if err := printer.Line(path, line); err != nil {
			return err
		}
	}
	return nil
}
