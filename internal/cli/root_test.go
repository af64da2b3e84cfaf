package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listbox/internal/cli"
)

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd("1.0.0")

	assert.Equal(t, "listbox", cmd.Use)
	assert.Equal(t, "1.0.0", cmd.Version)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	for _, name := range []string{"demo", "render", "config", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "--config", "/nonexistent/listbox.yaml", "render")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}

func TestRootCmd_EnvOverride(t *testing.T) {
	setupCLITest(t)
	env := map[string]string{"LISTBOX_DEFAULT_VALUE": "nj", "LISTBOX_LOG_LEVEL": "error"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cmd := cli.NewRootCmdWithEnv("test", lookup)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"render"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), `aria-activedescendant="nj"`)
	assert.Contains(t, out.String(), `id="nj" aria-selected="true"`)
}
