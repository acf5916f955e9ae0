// Package setup holds commands that manage gradebook's own settings
package setup

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/gradebook/internal/cli"
	"github.com/thenoetrevino/gradebook/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config subcommand
func ConfigCmd() *cobra.Command {
	var initFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the gradebook config file",
		Long: `Print the effective configuration, after the config file, environment
variables and command line flags have been applied.

Examples:
  # Show effective settings
  gradebook config

  # Write them to the config file
  gradebook config --init
`,
		Args: cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cli.ConfigFromContext(cmd.Context())
			if initFlag {
				return InitConfig(cmd.OutOrStdout(), cfg, forceFlag)
			}
			return ShowConfig(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().BoolVar(&initFlag, "init", false, "Write the effective settings to the config file")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}

// ShowConfig writes cfg to w as YAML
func ShowConfig(w io.Writer, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// InitConfig saves cfg to the config file. An existing file is kept unless
// force is set.
func InitConfig(w io.Writer, cfg *config.Config, force bool) error {
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s already exists, use --force to overwrite", cli.ErrUsage, path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Config written to %s\n", path)
	return nil
}
