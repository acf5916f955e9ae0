package cli

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/session"
	"github.com/thenoetrevino/gradebook/internal/user"
)

// RunSession runs the interactive menu on the command's input and output
func RunSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	s := session.New(
		cliInstance.App.GradeService,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		session.WithLogger(cliInstance.App.Logger().With("operator", user.Operator())),
	)
	return s.Run(ctx)
}
