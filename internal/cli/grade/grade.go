// Package grade holds the scriptable gradebook subcommands
package grade

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
)

// Commands returns every grade subcommand for registration on the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		AverageCmd(),
		EditCmd(),
		ReportCmd(),
		StatsCmd(),
	}
}

// addOutputFlags registers the agent-friendly flags every subcommand carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// withCLI opens the CLI for one command run and closes it afterwards.
// Initialization failures are reported through formatter.
func withCLI(ctx context.Context, formatter *cli.OutputFormatter, fn func(*cli.CLI) error) error {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Reported(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	return fn(cliInstance)
}
