package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"todo-list/internal/errors"
)

// DefaultConfigFileName is looked up in the working directory and in the
// user config directory when no explicit file is given.
const DefaultConfigFileName = "todo.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// WithConfigFile makes the loader read the given TOML file instead of
// searching the default locations. A missing explicit file is an error.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if any
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	path, explicit := l.resolveConfigFile()
	if path != "" {
		if err := l.loadFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	l.config.Normalize()
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		ApplyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	config.Normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolveConfigFile returns the file to read and whether it was asked for explicitly
func (l *Loader) resolveConfigFile() (string, bool) {
	if l.configFile != "" {
		return l.configFile, true
	}
	if path := os.Getenv("TODO_CONFIG"); path != "" {
		return path, true
	}
	if fileExists(DefaultConfigFileName) {
		return DefaultConfigFileName, false
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "todo", DefaultConfigFileName)
		if fileExists(path) {
			return path, false
		}
	}
	return "", false
}

func (l *Loader) loadFile(path string, explicit bool) error {
	if !fileExists(path) {
		if explicit {
			return errors.NewConfigurationError(path, os.ErrNotExist)
		}
		return nil
	}
	if _, err := toml.DecodeFile(path, l.config); err != nil {
		return errors.NewConfigurationError(path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StoreBackend     *string
	NotificationLife *time.Duration
	NotificationMax  *int
	ServerAddr       *string
	Timeout          *time.Duration
	Verbose          *bool
	Sidebar          *bool
}

// ApplyOverrides applies command line overrides to the configuration
func ApplyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StoreBackend != nil {
		config.Store.Backend = *overrides.StoreBackend
	}
	if overrides.NotificationLife != nil {
		config.Notifications.Life = *overrides.NotificationLife
	}
	if overrides.NotificationMax != nil {
		config.Notifications.MaxVisible = *overrides.NotificationMax
	}
	if overrides.ServerAddr != nil {
		config.Server.Addr = *overrides.ServerAddr
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.Sidebar != nil {
		config.Application.Sidebar = *overrides.Sidebar
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
