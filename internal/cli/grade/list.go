package grade

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
	"github.com/thenoetrevino/gradebook/internal/cli/styles"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every recorded grade",
		Args:  cli.NoArgs,
		RunE:  runList,
	}

	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	return withCLI(ctx, formatter, func(c *cli.CLI) error {
		entries, err := c.App.GradeService.ListGrades(ctx)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.JSON {
			return formatter.Success(entries)
		}
		if formatter.Quiet {
			return nil
		}

		if len(entries) == 0 {
			return formatter.Success(entries, "No grades available.")
		}

		lines := []string{
			"",
			styles.Render(styles.SectionStyle, "Grades by Student and Subject:"),
			"==============================",
		}
		for _, entry := range entries {
			lines = append(lines, entry.String())
		}
		return formatter.Success(entries, lines...)
	})
}
