package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/listbox/internal/listbox"
)

// Default values applied before a configuration file is read.
const (
	DefaultHeight   = 10
	DefaultLogLevel = "info"
	MaxHeight       = 200
)

// Validation errors returned by Config.Validate.
var (
	ErrInvalidHeight  = errors.New("listbox height must be between 1 and 200")
	ErrUnknownDefault = errors.New("default value does not match any option")
	ErrDuplicateValue = errors.New("duplicate option value")
	ErrInvalidLevel   = errors.New("invalid log level")
)

// Config is the full listbox configuration.
type Config struct {
	Listbox ListboxConfig `yaml:"listbox"`
	Logging LoggingConfig `yaml:"logging"`
}

// OptionConfig declares one listbox row.
type OptionConfig struct {
	Value    *string `yaml:"value,omitempty"`
	Label    string  `yaml:"label,omitempty"`
	Disabled bool    `yaml:"disabled,omitempty"`
}

// ListboxConfig configures the listbox widget.
type ListboxConfig struct {
	DefaultValue           *string        `yaml:"default_value,omitempty"`
	RebuildOnOptionsChange bool           `yaml:"rebuild_on_options_change"`
	ActiveDescendantUnset  *string        `yaml:"active_descendant_unset,omitempty"`
	VimKeys                bool           `yaml:"vim_keys"`
	Height                 int            `yaml:"height"`
	Title                  string         `yaml:"title,omitempty"`
	Options                []OptionConfig `yaml:"options"`
}

// New returns the default configuration: the city picker story.
func New() *Config {
	cfg := &Config{
		Listbox: defaultListboxSection(),
		Logging: defaultLoggingSection(),
	}
	cfg.Listbox.DefaultValue = listbox.Ref("default")
	cfg.Listbox.Title = "City"
	cfg.Listbox.Options = []OptionConfig{
		{Value: listbox.Ref("default"), Label: "Choose a city"},
		{Value: listbox.Ref("ny"), Label: "New York"},
		{Value: listbox.Ref("nj"), Label: "New Jersey"},
	}
	return cfg
}

// defaultListboxSection holds the scalar defaults of a listbox section, without options.
func defaultListboxSection() ListboxConfig {
	return ListboxConfig{
		RebuildOnOptionsChange: true,
		Height:                 DefaultHeight,
	}
}

func defaultLoggingSection() LoggingConfig {
	return LoggingConfig{
		Level:  DefaultLogLevel,
		Format: "console",
	}
}

// Load reads path on top of New. Sections present in the file replace the defaults wholesale.
func Load(path string) (*Config, error) {
	cfg := New()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate reports every problem found in the configuration.
// Duplicate values and an unmatched default are reported but still load; the widget
// degrades rather than failing on them.
func (c *Config) Validate() error {
	var errs []error

	lb := c.Listbox
	if lb.Height < 1 || lb.Height > MaxHeight {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidHeight, lb.Height))
	}

	seen := make(map[string]bool, len(lb.Options))
	for i, o := range lb.Options {
		if o.Value == nil || o.Disabled {
			continue
		}
		if seen[*o.Value] {
			errs = append(errs, fmt.Errorf("%w %q at option %d", ErrDuplicateValue, *o.Value, i))
		}
		seen[*o.Value] = true
	}

	if lb.DefaultValue != nil && !c.hasValue(*lb.DefaultValue) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDefault, *lb.DefaultValue))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c *Config) hasValue(v string) bool {
	for _, o := range c.Listbox.Options {
		if o.Value != nil && *o.Value == v {
			return true
		}
	}
	return false
}

// Decls converts the configured options into listbox declarations.
func (lc ListboxConfig) Decls() []listbox.OptionDecl {
	decls := make([]listbox.OptionDecl, len(lc.Options))
	for i, o := range lc.Options {
		decls[i] = listbox.OptionDecl{
			Value:    o.Value,
			Disabled: o.Disabled,
			Content:  o.Label,
		}
	}
	return decls
}

// Settings converts the section into the widget's construction-time configuration.
func (lc ListboxConfig) Settings() listbox.Config {
	cfg := listbox.DefaultConfig()
	cfg.DefaultValue = lc.DefaultValue
	cfg.RebuildOnOptionsChange = lc.RebuildOnOptionsChange
	cfg.Policy.UnsetActiveDescendant = lc.ActiveDescendantUnset
	if lc.VimKeys {
		cfg.Keys = listbox.VimKeyMap()
	}
	return cfg
}

// ApplyEnv applies LISTBOX_* environment overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookup(EnvDefaultValue); ok {
		c.Listbox.DefaultValue = listbox.Ref(v)
	}
}

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel     = "LISTBOX_LOG_LEVEL"
	EnvLogFile      = "LISTBOX_LOG_FILE"
	EnvDefaultValue = "LISTBOX_DEFAULT_VALUE"
	EnvHome         = "LISTBOX_HOME"
)
