package grade

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gradebook/internal/models"
	"github.com/thenoetrevino/gradebook/internal/testutil/cli"
)

func TestReport(t *testing.T) {
	store, app := cli.SetupCLITest(t)

	cli.SeedGrade(t, store, "Zed", "Math", 60)
	cli.SeedGrade(t, store, "Ann", "Science", 70)
	cli.SeedGrade(t, store, "Ann", "Math", 80)
	cli.SeedGrade(t, store, "Ann", "Math", 90)

	t.Run("Report human readable", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ReportCmd(), nil)

		require.NoError(t, err)
		assert.Equal(t, "\nDetailed Grade Report:\n"+
			"=======================\n"+
			"Student: Ann, Subject: Math, Average Grade: 85.00\n"+
			"Student: Ann, Subject: Science, Average Grade: 70.00\n"+
			"Student: Zed, Subject: Math, Average Grade: 60.00\n", output)
	})

	t.Run("Report markdown", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ReportCmd(), []string{"--markdown"})

		require.NoError(t, err)
		assert.Contains(t, output, "Detailed Grade Report")
		assert.Contains(t, output, "Science")
		assert.Contains(t, output, "85.00")
		assert.Less(t, strings.Index(output, "Ann"), strings.Index(output, "Zed"))
	})
}

func TestReport_Empty(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ReportCmd(), []string{"--markdown"})

	require.NoError(t, err)
	assert.Equal(t, "No grades available for the report.\n", output)
}

func TestReportMarkdown(t *testing.T) {
	md := ReportMarkdown([]models.ReportEntry{
		{StudentName: "Ann", Subject: "Math", Average: 85},
		{StudentName: "Pipe|Name", Subject: "Art", Average: 72.345},
	})

	assert.Equal(t, "# Detailed Grade Report\n\n"+
		"| Student | Subject | Average Grade |\n"+
		"| --- | --- | ---: |\n"+
		"| Ann | Math | 85.00 |\n"+
		`| Pipe\|Name | Art | 72.34 |`+"\n", md)
}
