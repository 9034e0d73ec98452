package config

import (
	"os"
	"strings"
	"time"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the to-do list application
type Config struct {
	Store         StoreConfig         `toml:"store"`
	Notifications NotificationsConfig `toml:"notifications"`
	Server        ServerConfig        `toml:"server"`
	Application   ApplicationConfig   `toml:"application"`
}

// StoreConfig selects where the session's task sequence lives
type StoreConfig struct {
	Backend string `toml:"backend" env:"TODO_STORE_BACKEND"`
}

// NotificationsConfig holds toast notification settings
type NotificationsConfig struct {
	Life       time.Duration `toml:"life" env:"TODO_NOTIFICATION_LIFE"`
	MaxVisible int           `toml:"max_visible" env:"TODO_NOTIFICATION_MAX"`
}

// ServerConfig holds HTTP front-end settings
type ServerConfig struct {
	Addr string `toml:"addr" env:"TODO_SERVER_ADDR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TODO_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TODO_APP_VERBOSE"`
	Sidebar bool          `toml:"sidebar" env:"TODO_APP_SIDEBAR"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendMemory,
		},
		Notifications: NotificationsConfig{
			Life:       3 * time.Second,
			MaxVisible: 5,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
			Sidebar: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that do not parse are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("TODO_STORE_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}

	if life := os.Getenv("TODO_NOTIFICATION_LIFE"); life != "" {
		c.Notifications.Life = ParseDurationWithFallback(life, c.Notifications.Life)
	}
	if maxVisible := os.Getenv("TODO_NOTIFICATION_MAX"); maxVisible != "" {
		c.Notifications.MaxVisible = ParseIntWithFallback(maxVisible, c.Notifications.MaxVisible)
	}

	if addr := os.Getenv("TODO_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}

	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if sidebar := os.Getenv("TODO_APP_SIDEBAR"); sidebar != "" {
		c.Application.Sidebar = ParseBoolWithFallback(sidebar, c.Application.Sidebar)
	}

	return nil
}

// Normalize brings values that are compared case-insensitively into their
// canonical form. The loader calls it before every Validate.
func (c *Config) Normalize() {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return &ConfigError{Field: "store.backend", Message: "backend must be one of: memory, sqlite"}
	}

	if c.Notifications.Life <= 0 {
		return &ConfigError{Field: "notifications.life", Message: "notification life must be positive"}
	}
	if c.Notifications.MaxVisible < 1 {
		return &ConfigError{Field: "notifications.max_visible", Message: "at least one notification must be visible"}
	}

	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
