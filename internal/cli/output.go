package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr when nil
	Out io.Writer
	Err io.Writer
}

// NewFormatter reads the --json and --quiet flags of a command and writes to
// the command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Printf writes raw output, used for quiet mode values that are not IDs
func (f *OutputFormatter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(f.out(), format, args...)
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs a successful operation result.
// human is printed line by line in human-readable mode.
func (f *OutputFormatter) Success(data any, human ...string) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			f.Printf("%d\n", idGetter.GetID())
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	for _, line := range human {
		_, _ = fmt.Fprintln(f.out(), line)
	}
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	_, _ = fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		_, _ = fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err to the user and returns it marked as reported, so the
// caller can hand it straight back to cobra.
func (f *OutputFormatter) Fail(err error) error {
	code, suggestion := describe(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return Reported(err)
}

// describe returns the machine readable code and a hint for err
func describe(err error) (string, string) {
	switch {
	case errors.Is(err, gradeservice.ErrGradeNotFound):
		return "GRADE_NOT_FOUND", "Use 'gradebook list' to see recorded grades"
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR", ""
	case ExitCodeFor(err) == ExitValidation:
		return "VALIDATION_ERROR", ""
	default:
		return "INTERNAL_ERROR", ""
	}
}
