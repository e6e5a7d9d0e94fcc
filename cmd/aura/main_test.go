package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/aura/internal/tooltip/content"
)

// resetFlags resets all package-level flags to their default values.
func resetFlags() {
	listCategory = ""
	listPage = ""
	verbose, quiet, noColor = false, false, true

	for _, cmd := range []*cobra.Command{tooltipsListCmd, tooltipsValidateCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
}

func newTestCmd(args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	resetFlags()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	return rootCmd, stdout, stderr
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exit code error, got %v", err)
	return ece.ExitCode()
}

func TestVersion(t *testing.T) {
	cmd, stdout, _ := newTestCmd("version")
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "aura dev\n", stdout.String())
}

func TestTooltipsList_All(t *testing.T) {
	cmd, stdout, _ := newTestCmd("tooltips", "list")
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, 33)
	assert.Contains(t, stdout.String(), content.ROI)
}

func TestTooltipsList_Category(t *testing.T) {
	cmd, stdout, _ := newTestCmd("tooltips", "list", "--category", "metric")
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, 8)
	for _, line := range lines {
		assert.Contains(t, line, "metric")
	}
}

func TestTooltipsList_Page(t *testing.T) {
	cmd, stdout, _ := newTestCmd("tooltips", "list", "--page", "simulation")
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, len(content.Pages["simulation"]))
}

func TestTooltipsList_InvalidFilters(t *testing.T) {
	tests := [][]string{
		{"tooltips", "list", "--category", "nope"},
		{"tooltips", "list", "--page", "nope"},
		{"tooltips", "list", "--page", "dashboard", "--category", "risk"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args[2:], " "), func(t *testing.T) {
			cmd, _, _ := newTestCmd(args...)
			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
		})
	}
}

func TestTooltipsValidate_PagesByDefault(t *testing.T) {
	cmd, stdout, _ := newTestCmd("tooltips", "validate")
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "all 33 tooltip id(s) have content")
}

func TestTooltipsValidate_Missing(t *testing.T) {
	cmd, stdout, _ := newTestCmd("tooltips", "validate", content.ROI, "no-such-tip")
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitMissingContent, exitCode(t, err))

	out := stdout.String()
	assert.Contains(t, out, "ok      roi")
	assert.Contains(t, out, "missing no-such-tip")
	assert.Contains(t, out, "1 of 2 tooltip id(s) have no content")
}

func TestTooltipsValidate_QuietHidesPassing(t *testing.T) {
	cmd, stdout, _ := newTestCmd("--quiet", "tooltips", "validate", content.ROI)
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, stdout.String(), "ok ")
}

func TestRoot_RejectsArgs(t *testing.T) {
	cmd, _, _ := newTestCmd("unexpected")
	assert.Error(t, cmd.Execute())
}
