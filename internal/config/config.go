// Package config loads the user configuration from
// $XDG_CONFIG_HOME/unitime/config.yaml, falling back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/unitime/unitime/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const appName = "unitime"

// Environment overrides
const (
	EnvBackend   = "UNITIME_BACKEND"
	EnvDataDir   = "UNITIME_DATA_DIR"
	EnvThemeFile = "UNITIME_THEME_FILE"
	EnvLogLevel  = "UNITIME_LOG_LEVEL"
)

// Defaults
const (
	DefaultBackend     = "sqlite"
	DefaultDebounce    = 250 * time.Millisecond
	DefaultRedisAddr   = "localhost:6379"
	DefaultRedisPrefix = "unitime:"
	DefaultLogLevel    = "info"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Board       BoardConfig        `yaml:"board"`
	LogLevel    string             `yaml:"log_level"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects where the board is saved
type StorageConfig struct {
	// Backend is one of sqlite, file, redis or memory
	Backend string `yaml:"backend"`
	// DataDir defaults to ~/.unitime
	DataDir string `yaml:"data_dir"`
	// Debounce is the quiet period before saving; 0 saves on every change
	Debounce *time.Duration `yaml:"debounce,omitempty"`
	Redis    RedisConfig    `yaml:"redis"`
}

// RedisConfig is only read when Backend is redis
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// BoardConfig controls board defaults
type BoardConfig struct {
	// SeedColumns creates SeedTitles on first start when the board is empty
	SeedColumns        *bool    `yaml:"seed_columns,omitempty"`
	SeedTitles         []string `yaml:"seed_titles,omitempty"`
	DefaultColumnTitle string   `yaml:"default_column_title,omitempty"`
}

// ShouldSeed reports whether an empty board gets starter columns
func (b BoardConfig) ShouldSeed() bool {
	return b.SeedColumns == nil || *b.SeedColumns
}

// DebounceDelay returns the configured quiet period
func (s StorageConfig) DebounceDelay() time.Duration {
	if s.Debounce == nil {
		return DefaultDebounce
	}
	return *s.Debounce
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from UNITIME_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv lets the environment override storage and logging settings
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBackend); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
	}

	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where Load looks for the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DefaultDataDir returns ~/.unitime, or a relative .unitime when the home
// directory is unknown
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(homeDir, "."+appName)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = DefaultBackend
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = DefaultDataDir()
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = DefaultRedisAddr
	}
	if c.Storage.Redis.Prefix == "" {
		c.Storage.Redis.Prefix = DefaultRedisPrefix
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
