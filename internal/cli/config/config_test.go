package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultDigits, cfg.Digits)
	assert.Equal(t, DefaultMissing, cfg.Missing)
	assert.Equal(t, 0, cfg.MaxWidth)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabwright.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: markdown\ndigits: 2\nmissing: \".\"\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Output)
	assert.Equal(t, 2, cfg.Digits)
	assert.Equal(t, ".", cfg.Missing)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabwright.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: markdown\n"), 0o644))

	t.Setenv("TABWRIGHT_OUTPUT", "csv")
	t.Setenv("TABWRIGHT_MAX_WIDTH", "120")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Output)
	assert.Equal(t, 120, cfg.MaxWidth)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("TABWRIGHT_OUTPUT", "csv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "")
	flags.Int("digits", 0, "")
	require.NoError(t, flags.Parse([]string{"--output", "html", "--digits", "3"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "html", cfg.Output)
	assert.Equal(t, 3, cfg.Digits)
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output, "an unset flag must not clobber defaults")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}
