package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/listbox/internal/config"
	"github.com/rshade/listbox/internal/tui"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with the default city options.

The file is written to --config when given, otherwise to $LISTBOX_HOME/config.yaml
(~/.listbox/config.yaml when LISTBOX_HOME is unset).`,
		Example: `  # Create the default configuration
  listbox config init

  # Create configuration, overwriting existing
  listbox config init --force

  # Write to a specific file
  listbox config init --config ./listbox.yaml`,
		Annotations: map[string]string{annotationSkipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		if configPath, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}

	// Check if config already exists and force isn't set
	if !force {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			if !tui.IsInteractive() {
				return errors.New("configuration file already exists, use --force to overwrite")
			}
			if res := ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), configPath); !res.Accepted {
				return errors.New("configuration file already exists, not overwritten")
			}
		case !os.IsNotExist(err):
			return fmt.Errorf("cannot access config path %s: %w", configPath, err)
		}
	}

	if err := config.New().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Ctx(cmd.Context()).Str("path", configPath).Msg("configuration initialized")
	cmd.Printf("Configuration initialized at %s\n", configPath)
	return nil
}
