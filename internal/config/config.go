package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDatabasePath = "TASKMANAGER_DB_PATH"
	EnvLanguage     = "TASKMANAGER_LANG"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Theme     ThemeConfig     `yaml:"theme"`
	Selection SelectionConfig `yaml:"selection"`
	Log       LogConfig       `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ThemeConfig struct {
	DarkMode bool   `yaml:"dark_mode"`
	Language string `yaml:"language"`
}

// SelectionConfig.Mode is "live" (list re-read on every click) or "snapshot"
// (positions resolved against the list as last rendered).
type SelectionConfig struct {
	Mode string `yaml:"mode"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "Task Manager",
			Version:      "1.0.0",
			WindowWidth:  1000,
			WindowHeight: 600,
		},
		Database: DatabaseConfig{
			Path: "tasks.db",
		},
		Theme: ThemeConfig{
			DarkMode: false,
			Language: "en",
		},
		Selection: SelectionConfig{
			Mode: "live",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads ~/.taskmanager/config.yaml, writing the defaults there on
// first run.
func NewManager() (*Manager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(configDir, "config.yaml"))
}

// NewManagerAt is NewManager with an explicit config file path. Values from a
// .env file in the working directory and from the environment override the
// file but are never written back.
func NewManagerAt(configPath string) (*Manager, error) {
	manager := &Manager{
		configPath: configPath,
	}

	if err := manager.loadConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	_ = godotenv.Load(".env")
	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	// Start from the defaults so keys missing from older files keep sane values.
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

// GetConfig returns the effective configuration: the file values with the
// environment overrides applied.
func (m *Manager) GetConfig() *Config {
	effective := *m.config
	effective.applyEnv()
	return &effective
}

func (m *Manager) Path() string {
	return m.configPath
}

// ThemeConfig returns the theme section as stored in the file.
func (m *Manager) ThemeConfig() ThemeConfig {
	return m.config.Theme
}

func (m *Manager) UpdateThemeConfig(config ThemeConfig) error {
	m.config.Theme = config
	return m.SaveConfig()
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDatabasePath); ok && v != "" {
		c.Database.Path = v
	}
	if v, ok := os.LookupEnv(EnvLanguage); ok && v != "" {
		c.Theme.Language = v
	}
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskmanager"), nil
}
