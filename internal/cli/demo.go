package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/listbox/internal/config"
	"github.com/rshade/listbox/internal/listbox"
	"github.com/rshade/listbox/internal/logging"
	"github.com/rshade/listbox/internal/tui"
)

// Component names accepted by demo --component.
const (
	ComponentListbox  = "listbox"
	ComponentButton   = "button"
	ComponentCombobox = "combobox"
)

// ErrUnknownComponent is returned for an unsupported --component value.
var ErrUnknownComponent = errors.New("unknown component")

type demoOptions struct {
	component   string
	height      int
	vim         bool
	focus       bool
	interactive func() bool
}

// NewDemoCmd creates the demo command that runs a component story in the terminal.
func NewDemoCmd() *cobra.Command {
	opts := demoOptions{interactive: tui.IsInteractive}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive component story",
		Long: `Runs a component in the terminal.

The listbox story shows the configured options. Tab gives the listbox focus, the arrow
keys move it, and Enter or Space selects. Rows can also be clicked. When stdin or stdout
is not a terminal the accessibility markup of the initial state is printed instead.`,
		Example: `  # Pick a city
  listbox demo

  # Start focused with vim keys and a short frame
  listbox demo --focus --vim --height 2

  # Show the button story
  listbox demo --component button`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.component, "component", ComponentListbox, "component story: listbox, button or combobox")
	cmd.Flags().IntVar(&opts.height, "height", 0, "visible listbox rows (0 = use config)")
	cmd.Flags().BoolVar(&opts.vim, "vim", false, "enable j/k navigation")
	cmd.Flags().BoolVar(&opts.focus, "focus", false, "start with the listbox focused")

	return cmd
}

func runDemo(cmd *cobra.Command, opts demoOptions) error {
	switch opts.component {
	case ComponentListbox:
		return runListboxDemo(cmd, opts)
	case ComponentButton:
		return runModel(cmd, opts, tui.NewButtonModel("Submit"), func(m tea.Model) string {
			return fmt.Sprintf("Pressed %d time(s)\n", m.(tui.ButtonModel).Presses())
		})
	case ComponentCombobox:
		return runModel(cmd, opts, tui.NewComboboxModel("Type a city"), func(m tea.Model) string {
			return fmt.Sprintf("Typed: %q\n", m.(tui.ComboboxModel).Value())
		})
	default:
		return fmt.Errorf("%w %q: expected %s, %s or %s",
			ErrUnknownComponent, opts.component, ComponentListbox, ComponentButton, ComponentCombobox)
	}
}

func runListboxDemo(cmd *cobra.Command, opts demoOptions) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).Err(err).Msg("configuration has problems, continuing")
	}

	section := cfg.Listbox
	if cmd.Flags().Changed("height") {
		section.Height = opts.height
	}
	if opts.vim {
		section.VimKeys = true
	}

	lb := listbox.New(section.Settings(), section.Decls())
	lb.SetLogger(logging.ComponentLogger(*logging.FromContext(ctx), "listbox"))
	if opts.focus && lb.Tabbable() {
		lb.Focus()
	}

	if !opts.interactive() {
		_, err := fmt.Fprint(cmd.OutOrStdout(), lb.Markup())
		return err
	}

	model := tui.NewListboxModel(ctx, lb, section.Title, section.Height, tui.TerminalWidth())
	final, err := runProgram(cmd, model)
	if err != nil {
		return err
	}

	selected := final.(*tui.ListboxModel).Selected()
	if selected == nil {
		cmd.Println("Nothing selected")
		return nil
	}
	cmd.Printf("Selected: %s (%s)\n", *selected, lb.Label(lb.Registry().IndexOf(selected)))
	return nil
}

// runModel runs a presentational component story and prints its outcome.
func runModel(cmd *cobra.Command, opts demoOptions, model tea.Model, summary func(tea.Model) string) error {
	if !opts.interactive() {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), model.View())
		return err
	}
	final, err := runProgram(cmd, model)
	if err != nil {
		return err
	}
	cmd.Print(summary(final))
	return nil
}

func runProgram(cmd *cobra.Command, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running %s story: %w", cmd.Name(), err)
	}
	return final, nil
}
