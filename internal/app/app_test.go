package app

import (
	"TaskManager/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen(t *testing.T) {
	defer zap.ReplaceGlobals(zap.NewNop())

	dir := t.TempDir()
	t.Setenv(config.EnvDatabasePath, filepath.Join(dir, "data", "tasks.db"))
	t.Setenv(config.EnvLanguage, "zh")

	manager, err := config.NewManagerAt(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	a, err := Open(manager)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "zh", a.Translator.Language())
	tasks, err := a.DB.ListOrdered()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestOpen_BadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: chatty\n"), 0644))

	manager, err := config.NewManagerAt(path)
	require.NoError(t, err)
	_, err = Open(manager)
	assert.Error(t, err)
}
