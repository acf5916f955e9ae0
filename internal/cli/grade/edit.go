package grade

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change an existing grade",
		Long: `Change the value of a grade recorded for a student in a subject.
When the student has several grades in the subject, the earliest one is changed.

Examples:
  gradebook edit --student=Ann --subject=Math --grade=95
`,
		Args: cli.NoArgs,
		RunE: runEdit,
	}

	cmd.Flags().String("student", "", "Student name (required)")
	cmd.Flags().String("subject", "", "Subject name (required)")
	cmd.Flags().String("grade", "", "New grade between 0 and 100 (required)")
	addOutputFlags(cmd)

	return cmd
}

// editResult is the JSON payload of the edit subcommand
type editResult struct {
	ID       int     `json:"id"`
	Student  string  `json:"student"`
	Subject  string  `json:"subject"`
	Previous float64 `json:"previous"`
	Grade    float64 `json:"grade"`
}

// GetID returns the edited grade ID
func (r *editResult) GetID() int {
	return r.ID
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	student, _ := cmd.Flags().GetString("student")
	subject, _ := cmd.Flags().GetString("subject")
	gradeText, _ := cmd.Flags().GetString("grade")

	formatter := cli.NewFormatter(cmd)

	return withCLI(ctx, formatter, func(c *cli.CLI) error {
		grade, err := c.App.GradeService.FindGrade(ctx, student, subject)
		if err != nil {
			return formatter.Fail(err)
		}

		value, err := gradeservice.ParseGrade(gradeText)
		if err != nil {
			return formatter.Fail(err)
		}

		if err := c.App.GradeService.UpdateGrade(ctx, gradeservice.UpdateGradeRequest{
			GradeID: grade.ID,
			Value:   value,
		}); err != nil {
			return formatter.Fail(err)
		}

		result := &editResult{
			ID:       grade.ID,
			Student:  student,
			Subject:  subject,
			Previous: grade.Value,
			Grade:    value,
		}
		return formatter.Success(result,
			fmt.Sprintf("Current grade for %s in %s: %.2f", student, subject, grade.Value),
			"Grade updated successfully.",
		)
	})
}
