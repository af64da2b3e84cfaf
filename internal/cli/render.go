package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/listbox/internal/config"
	"github.com/rshade/listbox/internal/listbox"
	"github.com/rshade/listbox/internal/logging"
)

// Output formats accepted by render --format.
const (
	FormatMarkup = "markup"
	FormatYAML   = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// renderReport is the YAML form of the final listbox state.
type renderReport struct {
	ID               string      `yaml:"id"`
	Phase            string      `yaml:"phase"`
	Focused          bool        `yaml:"focused"`
	FocusedValue     *string     `yaml:"focused_value"`
	SelectedValue    *string     `yaml:"selected_value"`
	TabIndex         int         `yaml:"tabindex"`
	ActiveDescendant *string     `yaml:"aria_activedescendant,omitempty"`
	Rows             []reportRow `yaml:"rows"`
}

type reportRow struct {
	ID       string `yaml:"id,omitempty"`
	Label    string `yaml:"label"`
	Selected bool   `yaml:"aria_selected"`
	Disabled bool   `yaml:"aria_disabled"`
}

// NewRenderCmd creates the render command, which replays a scripted interaction against the
// configured listbox and prints the resulting accessibility contract.
func NewRenderCmd() *cobra.Command {
	var (
		format string
		trace  bool
	)

	cmd := &cobra.Command{
		Use:   "render [step...]",
		Short: "Print the accessibility markup after a scripted interaction",
		Long: `Replays steps against the configured listbox without a terminal UI and prints the
resulting markup.

Steps are separated by spaces or commas:
  focus, blur                 give or remove input focus
  down, up, enter, space      key presses (also tab, home, end)
  key:<c>                     a printable key
  click:<value>               pointer press on a row
  default:<value>, default    change or clear the controlled default
  options:<v1>|<v2>|...       replace the option set`,
		Example: `  # Focus, move to New York and select it
  listbox render focus down enter

  # Keys are ignored until the listbox is focused
  listbox render down,enter

  # Report state as YAML, tracing each step on stderr
  listbox render click:nj default:ny --format yaml --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseScript(args)
			if err != nil {
				return err
			}
			return runRender(cmd, steps, format, trace)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatMarkup, "output format: markup or yaml")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the state after each step to stderr")

	return cmd
}

func runRender(cmd *cobra.Command, steps []step, format string, trace bool) error {
	if format != FormatMarkup && format != FormatYAML {
		return fmt.Errorf("%w %q: expected %s or %s", ErrUnknownFormat, format, FormatMarkup, FormatYAML)
	}

	ctx := cmd.Context()
	section := config.GetGlobalConfig().Listbox
	lb := listbox.New(section.Settings(), section.Decls())
	lb.SetLogger(logging.ComponentLogger(*logging.FromContext(ctx), "listbox"))

	for i, s := range steps {
		changed := s.apply(lb)
		logger.Debug().Ctx(ctx).
			Int("step", i+1).
			Str("token", s.raw).
			Bool("changed", changed).
			Msg("script step applied")
		if trace {
			traceStep(cmd.ErrOrStderr(), i+1, s, lb)
		}
	}

	if format == FormatYAML {
		return writeReport(cmd.OutOrStdout(), lb)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), lb.Markup())
	return err
}

func traceStep(w io.Writer, n int, s step, lb *listbox.Listbox) {
	snap := lb.Snapshot()
	_, _ = fmt.Fprintf(w, "%2d %-12s phase=%s focused=%s selected=%s\n",
		n, s.raw, lb.Controller().Phase(), traceValue(snap.FocusedValue), traceValue(snap.SelectedValue))
}

func traceValue(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func writeReport(w io.Writer, lb *listbox.Listbox) error {
	snap := lb.Snapshot()
	a := lb.Annotation()
	labels := lb.Labels()

	report := renderReport{
		ID:            a.Container.ID,
		Phase:         lb.Controller().Phase().String(),
		Focused:       lb.Focused(),
		FocusedValue:  snap.FocusedValue,
		SelectedValue: snap.SelectedValue,
		TabIndex:      a.Container.TabIndex,
		Rows:          make([]reportRow, len(a.Rows)),
	}
	if a.Container.HasActiveDescendant {
		ad := a.Container.ActiveDescendant
		report.ActiveDescendant = &ad
	}
	for i, r := range a.Rows {
		row := reportRow{ID: r.ID, Selected: r.Selected, Disabled: r.Disabled}
		if r.Index < len(labels) {
			row.Label = labels[r.Index]
		}
		report.Rows[i] = row
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
