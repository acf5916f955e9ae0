// Package cmd assembles the gradebook command tree
package cmd

import (
	"context"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
	"github.com/thenoetrevino/gradebook/internal/cli/grade"
	"github.com/thenoetrevino/gradebook/internal/cli/setup"
)

// rootOptions holds the persistent flags and the resources Bootstrap opened
type rootOptions struct {
	dbPath  string
	noColor bool

	logCloser io.Closer
}

// newRootCmd builds the gradebook root command with every subcommand attached.
// The returned options own the log file opened during bootstrap; run closes it.
func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gradebook",
		Short: "Student Grade Tracker",
		Long: `Gradebook records student grades in a local SQLite database.

Run without a subcommand to open the interactive menu, or use the
subcommands below for scripting.`,
		Args:          cli.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, closer, err := cli.Bootstrap(cmd.Context(), cli.BootstrapOptions{
				DatabasePath: opts.dbPath,
				NoColor:      opts.noColor,
				Output:       cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			opts.logCloser = closer
			cmd.SetContext(ctx)
			return nil
		},
		RunE: cli.RunSession,
	}

	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database file (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.SetFlagErrorFunc(cli.FlagError)

	for _, sub := range grade.Commands() {
		cmd.AddCommand(sub)
	}
	cmd.AddCommand(setup.ConfigCmd())

	return cmd, opts
}

func (o *rootOptions) close() {
	if o.logCloser == nil {
		return
	}
	if err := o.logCloser.Close(); err != nil {
		log.Printf("Error closing log file: %v", err)
	}
	o.logCloser = nil
}

// run executes cmd and releases what bootstrap opened, whatever the outcome
func run(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	defer opts.close()
	return cmd.ExecuteContext(ctx)
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	cmd, opts := newRootCmd()
	return run(ctx, cmd, opts)
}
