package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listbox/internal/config"
	"github.com/rshade/listbox/internal/listbox"
	"github.com/rshade/listbox/internal/logging"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "City", cfg.Listbox.Title)
	assert.Equal(t, config.DefaultHeight, cfg.Listbox.Height)
	assert.True(t, cfg.Listbox.RebuildOnOptionsChange)
	assert.Equal(t, "info", cfg.Logging.Level)

	decls := cfg.Listbox.Decls()
	require.Len(t, decls, 3)
	assert.Equal(t, "ny", *decls[1].Value)
	assert.Equal(t, "New York", decls[1].Content)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.Listbox.VimKeys = true
	cfg.Listbox.ActiveDescendantUnset = listbox.Ref("undefined")
	cfg.Listbox.Options = append(cfg.Listbox.Options, config.OptionConfig{Label: "Separator"})

	require.NoError(t, cfg.Save(path))
	loaded, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr []error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*config.Config) {},
		},
		{
			name:    "zero height",
			mutate:  func(c *config.Config) { c.Listbox.Height = 0 },
			wantErr: []error{config.ErrInvalidHeight},
		},
		{
			name:    "unknown default",
			mutate:  func(c *config.Config) { c.Listbox.DefaultValue = listbox.Ref("ca") },
			wantErr: []error{config.ErrUnknownDefault},
		},
		{
			name: "duplicate enabled values",
			mutate: func(c *config.Config) {
				c.Listbox.Options = append(c.Listbox.Options, config.OptionConfig{Value: listbox.Ref("ny")})
			},
			wantErr: []error{config.ErrDuplicateValue},
		},
		{
			name: "duplicate disabled value is allowed",
			mutate: func(c *config.Config) {
				c.Listbox.Options = append(c.Listbox.Options, config.OptionConfig{Value: listbox.Ref("ny"), Disabled: true})
			},
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.Logging.Level = "loud" },
			wantErr: []error{config.ErrInvalidLevel},
		},
		{
			name: "multiple problems are all reported",
			mutate: func(c *config.Config) {
				c.Listbox.Height = 500
				c.Listbox.Options = nil
			},
			wantErr: []error{config.ErrInvalidHeight, config.ErrUnknownDefault},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.True(t, errors.Is(err, want), "expected %v in %v", want, err)
			}
		})
	}
}

func TestSettings(t *testing.T) {
	lc := config.New().Listbox
	lc.VimKeys = true
	lc.RebuildOnOptionsChange = false
	lc.ActiveDescendantUnset = listbox.Ref("none")

	s := lc.Settings()

	assert.Equal(t, "default", *s.DefaultValue)
	assert.False(t, s.RebuildOnOptionsChange)
	assert.Equal(t, "none", *s.Policy.UnsetActiveDescendant)
	assert.Contains(t, s.Keys.Down.Keys(), "j")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvLogLevel:     "debug",
		config.EnvDefaultValue: "nj",
	}
	cfg := config.New()

	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "nj", *cfg.Listbox.DefaultValue)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	stderr := config.LoggingConfig{Level: "warn", Format: "json"}.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, stderr.Output)
	assert.Equal(t, "warn", stderr.Level)

	file := config.LoggingConfig{File: "/tmp/listbox.log"}.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, file.Output)
	assert.Equal(t, "/tmp/listbox.log", file.File)
}

func TestLoggingConfig_EnsureLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	lc := config.LoggingConfig{File: filepath.Join(dir, "listbox.log")}

	require.NoError(t, lc.EnsureLogDir())
	assert.DirExists(t, dir)
	assert.NoError(t, config.LoggingConfig{}.EnsureLogDir())
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())

	cfg, err := config.LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)

	_, err = config.LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path, err := config.DefaultConfigPath()
	require.NoError(t, err)
	custom := config.New()
	custom.Listbox.Height = 4
	require.NoError(t, custom.Save(path))

	cfg, err = config.LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Listbox.Height)
}

func TestGlobalConfig(t *testing.T) {
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	assert.Equal(t, config.New(), config.GetGlobalConfig())

	custom := config.New()
	custom.Logging.Level = "error"
	config.SetGlobalConfig(custom)
	assert.Equal(t, "error", config.GetLoggingConfig().Level)
}
