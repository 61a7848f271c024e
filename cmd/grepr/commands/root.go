// Package commands implements the command line interface of grepr.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/grepr/internal/build"
	"go.trai.ch/grepr/internal/core/domain"
)

// CLI represents the command line interface for grepr.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    options
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, cfg domain.Config, stdout, stderr io.Writer) error
}

type options struct {
	recursive   bool
	countOnly   bool
	invertMatch bool
	insensitive bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "grepr [flags] PATTERN [FILE...]",
		Short: "Print lines that match a regular expression",
		Long: "grepr searches each FILE for lines matching PATTERN, an RE2 regular expression.\n" +
			"With no FILE, or when FILE is -, standard input is read.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          requirePattern,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Search flags and -V are declared before the defaults so cobra does not claim -v for --version.
	flags := rootCmd.Flags()
	flags.BoolVarP(&c.opts.recursive, "recursive", "r", false, "Recursively search files beneath directories")
	flags.BoolVarP(&c.opts.countOnly, "count", "c", false, "Print only a count of selected lines per file")
	flags.BoolVarP(&c.opts.invertMatch, "invert-match", "v", false, "Select non-matching lines")
	flags.BoolVarP(&c.opts.insensitive, "insensitive", "i", false, "Match case-insensitively")
	flags.BoolP("version", "V", false, "Print the application version")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(domain.ErrInvalidUsage, err)
	})

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	cfg := domain.Config{
		Pattern:     args[0],
		Paths:       args[1:],
		Recursive:   c.opts.recursive,
		CountOnly:   c.opts.countOnly,
		InvertMatch: c.opts.invertMatch,
		Insensitive: c.opts.insensitive,
	}
	if len(cfg.Paths) == 0 {
		cfg.Paths = domain.DefaultPaths()
	}

	return c.app.Run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func requirePattern(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.Join(domain.ErrInvalidUsage, domain.ErrMissingPattern)
	}
	return nil
}
