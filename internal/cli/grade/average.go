package grade

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
)

// AverageCmd returns the average subcommand
func AverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "average",
		Short: "Show the average grade for a subject",
		Long: `Show the mean of every grade recorded for a subject.
Subjects match exactly, so "math" and "Math" are different subjects.`,
		Args: cli.NoArgs,
		RunE: runAverage,
	}

	cmd.Flags().String("subject", "", "Subject name (required)")
	addOutputFlags(cmd)

	return cmd
}

// averageResult is the JSON payload of the average subcommand.
// Average is null when the subject has no grades.
type averageResult struct {
	Subject string   `json:"subject"`
	Average *float64 `json:"average"`
}

func runAverage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	subject, _ := cmd.Flags().GetString("subject")
	formatter := cli.NewFormatter(cmd)

	return withCLI(ctx, formatter, func(c *cli.CLI) error {
		avg, err := c.App.GradeService.AverageForSubject(ctx, subject)
		if err != nil {
			return formatter.Fail(err)
		}

		result := averageResult{Subject: subject, Average: avg}

		if formatter.Quiet {
			if avg != nil {
				formatter.Printf("%.2f\n", *avg)
			}
			return nil
		}

		if avg == nil {
			return formatter.Success(result, fmt.Sprintf("No grades available for the subject: %s.", subject))
		}
		return formatter.Success(result, fmt.Sprintf("Average grade for %s: %.2f", subject, *avg))
	})
}
