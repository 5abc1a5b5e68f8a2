package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg := FromViper(newViper())

	assert.Equal(t, "gamedash", cfg.App.Name)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Sync.PollInterval)
	assert.Equal(t, 40, cfg.Sync.DefaultLimit)
	assert.False(t, cfg.Sync.RejectConcurrent)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, map[string]int{"critical": 6, "default": 3, "low": 1}, cfg.Asynq.Queues)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddress())
	assert.Equal(t, "./exports", cfg.Export.Dir)
	assert.Equal(t, 168*time.Hour, cfg.Export.Retention)
	assert.Equal(t, "@daily", cfg.Export.PruneCron)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.App.Debug, "development implies debug")

	require.NoError(t, cfg.Validate())
}

func TestFromViper_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://games.internal/api/")
	t.Setenv("SYNC_POLL_INTERVAL", "250ms")
	t.Setenv("SYNC_REJECT_CONCURRENT", "true")
	t.Setenv("SECURITY_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("APP_ENV", "production")

	cfg := FromViper(newViper())

	assert.Equal(t, "https://games.internal/api", cfg.Backend.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.PollInterval)
	assert.True(t, cfg.Sync.RejectConcurrent)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Security.SecureHeaders, "production forces secure headers")
	assert.False(t, cfg.App.Debug)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{
			name:     "missing_base_url",
			mutate:   func(c *Config) { c.Backend.BaseURL = "" },
			errorMsg: "missing required configuration: Backend.BaseURL",
		},
		{
			name:     "relative_base_url",
			mutate:   func(c *Config) { c.Backend.BaseURL = "games/api" },
			errorMsg: "absolute URL",
		},
		{
			name:     "zero_poll_interval",
			mutate:   func(c *Config) { c.Sync.PollInterval = 0 },
			errorMsg: "poll_interval",
		},
		{
			name:     "default_limit_too_large",
			mutate:   func(c *Config) { c.Sync.DefaultLimit = 41 },
			errorMsg: "default_limit must be between 1 and 40",
		},
		{
			name: "schedule_without_cron",
			mutate: func(c *Config) {
				c.Sync.ScheduleEnabled = true
				c.Sync.ScheduleCron = " "
			},
			errorMsg: "schedule_cron",
		},
		{
			name:     "negative_export_retention",
			mutate:   func(c *Config) { c.Export.Retention = -time.Hour },
			errorMsg: "retention",
		},
		{
			name: "snapshot_without_dir",
			mutate: func(c *Config) {
				c.Export.SnapshotAfterSync = true
				c.Export.Dir = ""
			},
			errorMsg: "export dir",
		},
		{
			name:     "fetch_page_too_large",
			mutate:   func(c *Config) { c.Pagination.FetchPageSize = 500 },
			errorMsg: "fetch_page_size",
		},
		{
			name: "production_wildcard_origin",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.App.Debug = false
				c.Security.SecureHeaders = true
			},
			errorMsg: "wildcard origin",
		},
		{
			name: "production_debug",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Security.SecureHeaders = true
				c.Security.AllowedOrigins = []string{"https://dash.example"}
			},
			errorMsg: "debug mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromViper(newViper())
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidate_MissingPortIsRequired(t *testing.T) {
	cfg := FromViper(newViper())
	cfg.Server.Port = ""

	err := cfg.Validate()
	assert.True(t, errors.Is(err, ErrMissingRequiredConfig))
}

func TestParseQueues(t *testing.T) {
	assert.Equal(t, map[string]int{"critical": 6, "default": 3}, parseQueues("critical:6, default : 3"))
	assert.Equal(t, map[string]int{"default": 1}, parseQueues("garbage"))
	assert.Equal(t, map[string]int{"a": 2}, parseQueues("a:2,b:x"))
}
