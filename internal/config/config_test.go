package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 3*time.Second, cfg.Notifications.Life)
	assert.Equal(t, 5, cfg.Notifications.MaxVisible)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
	assert.False(t, cfg.Application.Sidebar)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TODO_STORE_BACKEND", "SQLite")
	t.Setenv("TODO_NOTIFICATION_LIFE", "5s")
	t.Setenv("TODO_NOTIFICATION_MAX", "2")
	t.Setenv("TODO_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("TODO_APP_TIMEOUT", "2m")
	t.Setenv("TODO_APP_VERBOSE", "true")
	t.Setenv("TODO_APP_SIDEBAR", "1")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "SQLite", cfg.Store.Backend)
	cfg.Normalize()
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, 5*time.Second, cfg.Notifications.Life)
	assert.Equal(t, 2, cfg.Notifications.MaxVisible)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
	assert.True(t, cfg.Application.Sidebar)
}

func TestLoadFromEnvironment_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("TODO_NOTIFICATION_LIFE", "soon")
	t.Setenv("TODO_NOTIFICATION_MAX", "many")
	t.Setenv("TODO_APP_VERBOSE", "loud")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 3*time.Second, cfg.Notifications.Life)
	assert.Equal(t, 5, cfg.Notifications.MaxVisible)
	assert.False(t, cfg.Application.Verbose)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"unknown backend", func(c *Config) { c.Store.Backend = "postgres" }, "store.backend"},
		{"zero life", func(c *Config) { c.Notifications.Life = 0 }, "notifications.life"},
		{"no visible notifications", func(c *Config) { c.Notifications.MaxVisible = 0 }, "notifications.max_visible"},
		{"empty address", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"negative timeout", func(c *Config) { c.Application.Timeout = -time.Second }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
			assert.Contains(t, err.Error(), tt.field+": ")
		})
	}
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, time.Minute, ParseDurationWithFallback("1m", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("x", time.Second))
	assert.Equal(t, 7, ParseIntWithFallback("7", 1))
	assert.Equal(t, 1, ParseIntWithFallback("seven", 1))
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.True(t, ParseBoolWithFallback("maybe", true))
}
