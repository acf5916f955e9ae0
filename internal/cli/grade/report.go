package grade

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
	"github.com/thenoetrevino/gradebook/internal/cli/styles"
	"github.com/thenoetrevino/gradebook/internal/models"
)

// reportWrapWidth is the word wrap width of the rendered markdown report
const reportWrapWidth = 80

// ReportCmd returns the report subcommand
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show average grades per student and subject",
		Long: `Show the average grade of every student in every subject, sorted by
student name and then subject.

Examples:
  gradebook report
  gradebook report --markdown
`,
		Args: cli.NoArgs,
		RunE: runReport,
	}

	cmd.Flags().Bool("markdown", false, "Render the report as a markdown table")
	addOutputFlags(cmd)

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	markdown, _ := cmd.Flags().GetBool("markdown")
	formatter := cli.NewFormatter(cmd)

	return withCLI(ctx, formatter, func(c *cli.CLI) error {
		entries, err := c.App.GradeService.Report(ctx)
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
			return formatter.Success(entries, "No grades available for the report.")
		}

		if markdown {
			rendered, err := renderMarkdown(ReportMarkdown(entries))
			if err != nil {
				return formatter.Fail(err)
			}
			return formatter.Success(entries, rendered)
		}

		lines := []string{
			"",
			styles.Render(styles.SectionStyle, "Detailed Grade Report:"),
			"=======================",
		}
		for _, entry := range entries {
			lines = append(lines, entry.String())
		}
		return formatter.Success(entries, lines...)
	})
}

// ReportMarkdown builds a markdown table of report entries
func ReportMarkdown(entries []models.ReportEntry) string {
	var b strings.Builder
	b.WriteString("# Detailed Grade Report\n\n")
	b.WriteString("| Student | Subject | Average Grade |\n")
	b.WriteString("| --- | --- | ---: |\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "| %s | %s | %.2f |\n",
			escapeCell(entry.StudentName), escapeCell(entry.Subject), entry.Average)
	}
	return b.String()
}

// escapeCell keeps user text from breaking the table layout
func escapeCell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}

// renderMarkdown renders md for the terminal. Plain output gets the
// no-color style so piped reports stay free of escape codes.
func renderMarkdown(md string) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if !styles.Enabled() {
		styleOpt = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(reportWrapWidth),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return strings.TrimRight(rendered, "\n"), nil
}
