package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildCommand(t *testing.T) {
	cmd := NewBuildCommand()

	assert.Equal(t, "build [data.csv]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"formula", "db", "from", "query", "title"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestBuildCommand_CSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "trial.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("sex,age\nM,34\nF,29\nM,41\n"), 0o644))

	cmd := NewBuildCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{csvPath, "--formula", "sex ~ age"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "M")
	assert.Contains(t, out, "F")
}

func TestBuildCommand_SidecarMeta(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "trial.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("sex,wt\nM,81.6\nF,58.2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trial.meta.yaml"),
		[]byte("columns:\n  wt:\n    label: Weight(kg)\n"), 0o644))

	cmd := NewBuildCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{csvPath, "--formula", "sex ~ wt"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Weight (kg)")
}

func TestBuildCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "trial.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("sex,age\nM,34\n"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{name: "no input source", args: []string{"--formula", "sex ~ age"}},
		{name: "bad formula", args: []string{csvPath, "--formula", "sex +"}},
		{name: "unknown column", args: []string{csvPath, "--formula", "sex ~ bogus"}},
		{name: "missing csv file", args: []string{filepath.Join(dir, "nope.csv"), "--formula", "sex ~ age"}},
		{name: "db without from or query", args: []string{"--db", filepath.Join(dir, "x.db"), "--formula", "sex ~ age"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewBuildCommand()
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(tt.args)
			require.Error(t, cmd.Execute())
		})
	}
}

func TestNewInspectCommand(t *testing.T) {
	cmd := NewInspectCommand()
	assert.Equal(t, "inspect <formula>", cmd.Use)

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"sex ~ age + weight::Continuous"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Formula: sex ~ age + weight::Continuous")
	assert.Contains(t, out, "Columns:")
	assert.Contains(t, out, "  sex")
	assert.Contains(t, out, "  weight::Continuous")
}

func TestInspectCommand_BadFormula(t *testing.T) {
	cmd := NewInspectCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"sex ~ ("})

	require.Error(t, cmd.Execute())
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "tabwright v1.2.3")
}
