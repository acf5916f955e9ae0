package grade

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
)

// StatsCmd returns the stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how many students and grades are stored",
		Args:  cli.NoArgs,
		RunE:  runStats,
	}

	addOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	return withCLI(ctx, formatter, func(c *cli.CLI) error {
		stats, err := c.App.GradeService.Stats(ctx)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.Quiet {
			formatter.Printf("%d %d\n", stats.Students, stats.Grades)
			return nil
		}

		return formatter.Success(stats,
			fmt.Sprintf("Students: %d", stats.Students),
			fmt.Sprintf("Grades: %d", stats.Grades),
		)
	})
}
