package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/listbox/internal/config"
)

// ExitCodeWarnings is the exit code of config validate --strict when only warnings were found.
const ExitCodeWarnings = 2

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var (
		verbose bool
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the loaded configuration for semantic correctness.

Errors:
- Listbox height outside 1-200
- Unknown logging level

Warnings (the listbox still runs, degrading to no focused or selected row):
- Duplicate option values (the first declaration wins)
- A default value that matches no option`,
		Example: `  # Validate current configuration
  listbox config validate

  # Validate and show detailed information
  listbox config validate --verbose

  # Fail on warnings too
  listbox config validate --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose, strict)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with code 2 when warnings are found")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose, strict bool) error {
	cfg := config.GetGlobalConfig()

	problems, warnings := classifyProblems(cfg.Validate())
	if len(problems) > 0 {
		cmd.PrintErrln("Configuration errors:")
		for _, e := range problems {
			cmd.PrintErrf("  - %s\n", e.Error())
		}
		return fmt.Errorf("configuration has %d error(s)", len(problems))
	}

	if len(warnings) > 0 {
		cmd.Println("Configuration warnings:")
		for _, w := range warnings {
			cmd.Printf("  - %s\n", w.Error())
		}
		cmd.Println()
	}
	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	if strict && len(warnings) > 0 {
		return &ExitError{
			ExitCode: ExitCodeWarnings,
			Reason:   fmt.Sprintf("configuration has %d warning(s)", len(warnings)),
		}
	}
	return nil
}

// classifyProblems splits the findings of Config.Validate into errors and warnings.
func classifyProblems(err error) ([]error, []error) {
	if err == nil {
		return nil, nil
	}

	findings := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // Unwrapping errors.Join.
		findings = joined.Unwrap()
	}

	var problems, warnings []error
	for _, f := range findings {
		if errors.Is(f, config.ErrDuplicateValue) || errors.Is(f, config.ErrUnknownDefault) {
			warnings = append(warnings, f)
		} else {
			problems = append(problems, f)
		}
	}
	return problems, warnings
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	lb := cfg.Listbox
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Options: %d\n", len(lb.Options))
	for _, o := range lb.Options {
		value := "(placeholder)"
		if o.Value != nil {
			value = *o.Value
		}
		if o.Disabled {
			value += " [disabled]"
		}
		cmd.Printf("    - %s: %s\n", value, o.Label)
	}
	cmd.Printf("  Default value: %s\n", traceValue(lb.DefaultValue))
	cmd.Printf("  Height: %d\n", lb.Height)
	cmd.Printf("  Rebuild on options change: %t\n", lb.RebuildOnOptionsChange)
	cmd.Printf("  Vim keys: %t\n", lb.VimKeys)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
