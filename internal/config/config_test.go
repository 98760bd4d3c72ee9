package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAt_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	m, err := NewManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, "tasks.db", m.GetConfig().Database.Path)
	assert.Equal(t, "live", m.GetConfig().Selection.Mode)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestNewManagerAt_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  path: /tmp/other.db
selection:
  mode: snapshot
`), 0644))

	m, err := NewManagerAt(path)
	require.NoError(t, err)
	cfg := m.GetConfig()
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "snapshot", cfg.Selection.Mode)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 1000, cfg.App.WindowWidth)
	assert.Equal(t, "en", cfg.Theme.Language)
}

func TestNewManagerAt_RejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0644))

	_, err := NewManagerAt(path)
	assert.Error(t, err)
}

func TestNewManagerAt_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDatabasePath, "/data/tasks.db")
	t.Setenv(EnvLanguage, "zh")

	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/tasks.db", m.GetConfig().Database.Path)
	assert.Equal(t, "zh", m.GetConfig().Theme.Language)
}

func TestUpdateThemeConfig_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManagerAt(path)
	require.NoError(t, err)

	require.NoError(t, m.UpdateThemeConfig(ThemeConfig{DarkMode: true, Language: "zh"}))

	reloaded, err := NewManagerAt(path)
	require.NoError(t, err)
	assert.True(t, reloaded.GetConfig().Theme.DarkMode)
	assert.Equal(t, "zh", reloaded.GetConfig().Theme.Language)
}

func TestEnvOverridesAreNotSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManagerAt(path)
	require.NoError(t, err)

	t.Setenv(EnvDatabasePath, "/elsewhere.db")
	assert.Equal(t, "/elsewhere.db", m.GetConfig().Database.Path)
	require.NoError(t, m.UpdateThemeConfig(ThemeConfig{Language: "en"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/elsewhere.db")
}
