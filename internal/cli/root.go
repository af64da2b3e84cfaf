package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/listbox/internal/config"
	"github.com/rshade/listbox/internal/logging"
	"github.com/rshade/listbox/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// ExitError carries a process exit code chosen by a command.
type ExitError struct {
	ExitCode int
	Reason   string
}

func (e *ExitError) Error() string {
	return e.Reason
}

// NewRootCmd creates the root Cobra command for the listbox CLI.
// It wires up configuration, logging and tracing, and the demo, render, config and
// version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "listbox",
		Short:   "Accessible single-selection listbox for the terminal",
		Long:    "listbox: keyboard and mouse driven single selection with an ARIA-style accessibility contract",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				tui.DisableColor()
			}
			if err := loadConfig(cmd, lookupEnv); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "render the terminal UI without colors")
	cmd.PersistentFlags().String("config", "", "configuration file (default $LISTBOX_HOME/config.yaml)")
	cmd.AddCommand(NewDemoCmd(), NewRenderCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Pick a city interactively
  listbox demo

  # Try the other component stories
  listbox demo --component button

  # Print the accessibility markup after focusing, moving down and committing
  listbox render focus down enter

  # Replay a click and emit a YAML report
  listbox render click:nj --format yaml

  # Initialize and check configuration
  listbox config init
  listbox config validate --verbose`

// annotationSkipConfigLoad marks commands that run on built-in defaults instead of the
// configuration file.
const annotationSkipConfigLoad = "listbox/skip-config-load"

// loadConfig reads the configuration file, applies environment overrides, and publishes
// the result as the global configuration.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) error {
	cfg := config.New()
	if cmd.Annotations[annotationSkipConfigLoad] == "" {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.LoadOrDefault(path)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv(lookupEnv)
	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
