package grade

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a grade for a student",
		Long: `Record a grade for a student in a subject. The student is created on first use.

Examples:
  # Human-readable output
  gradebook add --student=Ann --subject=Math --grade=90

  # Quiet mode for bash capture
  GRADE_ID=$(gradebook add --student=Ann --subject=Math --grade=90 --quiet)
`,
		Args: cli.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("student", "", "Student name (required)")
	cmd.Flags().String("subject", "", "Subject name (required)")
	cmd.Flags().String("grade", "", "Grade between 0 and 100 (required)")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	student, _ := cmd.Flags().GetString("student")
	student = strings.TrimSpace(student)
	subject, _ := cmd.Flags().GetString("subject")
	gradeText, _ := cmd.Flags().GetString("grade")

	formatter := cli.NewFormatter(cmd)

	value, err := gradeservice.ParseGrade(gradeText)
	if err != nil {
		return formatter.Fail(err)
	}

	return withCLI(ctx, formatter, func(c *cli.CLI) error {
		grade, err := c.App.GradeService.AddGrade(ctx, gradeservice.AddGradeRequest{
			StudentName: student,
			Subject:     subject,
			Value:       value,
		})
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success(grade, fmt.Sprintf("Grade %.2f added for %s in %s.", grade.Value, student, grade.Subject))
	})
}
