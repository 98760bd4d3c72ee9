package main

import (
	"TaskManager/internal/config"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	t          *testing.T
	configPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvDatabasePath, filepath.Join(dir, "tasks.db"))
	t.Setenv(config.EnvLanguage, "en")
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })
	return &harness{t: t, configPath: filepath.Join(dir, "config.yaml")}
}

func (h *harness) run(stdin string, args ...string) (string, string, error) {
	h.t.Helper()
	rootCmd, c := newRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", h.configPath}, args...))

	err := rootCmd.Execute()
	c.close()
	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, errOut, err := h.run("", args...)
	require.NoError(h.t, err, errOut)
	return out
}

func TestAddListAndComplete(t *testing.T) {
	h := newHarness(t)

	h.mustRun("add", "Call mom", "--priority", "high")
	h.mustRun("add", "Buy milk", "-p", "Low")

	assert.Equal(t, "  1  Buy milk\n  2  Call mom\n", h.mustRun("list"))

	h.mustRun("done", "1")
	assert.Equal(t, "  1  Call mom\n  2  ✔ Buy milk\n", h.mustRun("list"))

	out := h.mustRun("show", "2")
	assert.Contains(t, out, "Task Title: Buy milk")
	assert.Contains(t, out, "Priority: Low")
	assert.Contains(t, out, "Completed: true")
}

func TestEdit(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "Draft report", "--due", "2024-05-01")

	h.mustRun("edit", "1", "--title", "Final report", "--priority", "High")

	out := h.mustRun("show", "1")
	assert.Contains(t, out, "Task Title: Final report")
	assert.Contains(t, out, "Priority: High")
	assert.Contains(t, out, "Due Date (YYYY-MM-DD): 2024-05-01")
}

func TestValidationErrors(t *testing.T) {
	h := newHarness(t)

	_, errOut, err := h.run("", "add", "Report", "--due", "2024-13-01")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "Invalid date format")

	_, errOut, err = h.run("", "add", "   ")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "Task title is required")

	assert.Empty(t, h.mustRun("list"))
}

func TestShowOutOfRange(t *testing.T) {
	h := newHarness(t)

	_, errOut, err := h.run("", "show", "3")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "No task at that position")

	_, _, err = h.run("", "show", "three")
	assert.Error(t, err)
}

func TestDeleteConfirmation(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "Keep me")

	out, _, err := h.run("n\n", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete this task? [y/N]")
	assert.Equal(t, "  1  Keep me\n", h.mustRun("list"))

	_, _, err = h.run("y\n", "delete", "1")
	require.NoError(t, err)
	assert.Empty(t, h.mustRun("list"))

	h.mustRun("add", "Gone too")
	h.mustRun("delete", "1", "--yes")
	assert.Empty(t, h.mustRun("list"))
}

func TestStats(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "one", "--priority", "High")
	h.mustRun("add", "two", "--done")

	out := h.mustRun("stats")
	assert.Contains(t, out, "Total Tasks: 2")
	assert.Contains(t, out, "Completed: 1")
	assert.Contains(t, out, "High priority open: 1")
}

func TestConfigCommands(t *testing.T) {
	h := newHarness(t)

	h.mustRun("config", "set-dark-mode", "true")
	h.mustRun("config", "set-language", "zh")

	m, err := config.NewManagerAt(h.configPath)
	require.NoError(t, err)
	assert.True(t, m.ThemeConfig().DarkMode)
	assert.Equal(t, "zh", m.ThemeConfig().Language)

	out := h.mustRun("config")
	assert.Contains(t, out, h.configPath)
	assert.Contains(t, out, "dark_mode: true")

	_, _, err = h.run("", "config", "set-dark-mode", "maybe")
	assert.Error(t, err)
}
