// Package main is the entry point for grepr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/grepr/cmd/grepr/commands"
	"go.trai.ch/grepr/internal/app"
	"go.trai.ch/grepr/internal/core/domain"
	"go.trai.ch/grepr/internal/core/ports"
	_ "go.trai.ch/grepr/internal/wiring"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// logFormatEnv selects the diagnostic log format. "json" enables JSON output.
const logFormatEnv = "GREPR_LOG_FORMAT"

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// configurableLogger is implemented by loggers whose destination and format can be changed.
type configurableLogger interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitError
	}
	defer cleanup()

	configureLogger(components.Logger, stderr)

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		return report(components.Logger, stderr, err)
	}
	return exitOK
}

func configureLogger(logger ports.Logger, stderr io.Writer) {
	l, ok := logger.(configurableLogger)
	if !ok {
		return
	}

	l.SetOutput(stderr)
	if os.Getenv(logFormatEnv) == "json" {
		l.SetJSON(true)
	}
}

// report logs err and maps it to an exit code.
func report(logger ports.Logger, stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidUsage):
		logger.Error(err)
		_, _ = fmt.Fprintln(stderr, "Run 'grepr --help' for usage.")
		return exitUsage
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted")
		return exitError
	default:
		logger.Error(err)
		return exitError
	}
}
