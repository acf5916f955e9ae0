package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/app"
	clipkg "github.com/thenoetrevino/gradebook/internal/cli"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected into the command context so GetCLIFromContext reuses
// the test database instead of opening the configured one.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	ctxWithApp := clipkg.WithApp(ctx, testApp)
	cmd.SetContext(ctxWithApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Errors go to stderr and are checked through the returned error
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)

	executeErr := cmd.ExecuteContext(ctxWithApp)

	return stdout.String(), executeErr
}
