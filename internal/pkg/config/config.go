// internal/pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Backend    BackendConfig
	Sync       SyncConfig
	Pagination PaginationConfig
	Redis      RedisConfig
	Asynq      AsynqConfig
	Export     ExportConfig
	Security   SecurityConfig
	Server     ServerConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// BackendConfig points at the games backend REST API
type BackendConfig struct {
	BaseURL           string `required:"true"`
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	Burst             int
}

// SyncConfig controls the sync orchestrator and scheduled syncs
type SyncConfig struct {
	PollInterval     time.Duration
	MaxDuration      time.Duration // 0 disables the bound
	DefaultLimit     int
	RejectConcurrent bool
	ScheduleEnabled  bool
	ScheduleCron     string
	ScheduleAll      bool
}

// PaginationConfig holds list view sizes
type PaginationConfig struct {
	PageSize      int
	FetchPageSize int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	TTL          time.Duration
}

// AsynqConfig holds Asynq configuration
type AsynqConfig struct {
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	Concurrency     int
	Queues          map[string]int // queue name -> priority
	StrictPriority  bool
	ShutdownTimeout time.Duration
}

// ExportConfig controls worker-side spreadsheet snapshots
type ExportConfig struct {
	Dir               string
	Retention         time.Duration // 0 keeps snapshots forever
	SnapshotAfterSync bool
	PruneCron         string
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	RateLimitRequests int
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	SecureHeaders     bool
	RequestIDHeader   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string `required:"true"`
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxHeaderBytes  int
	GracefulTimeout time.Duration
}

// Load reads configuration from the environment, an optional .env file in
// development, and an optional gamedash.yaml in the working directory or
// /etc/gamedash. Environment variables win over the file.
func Load(logger *slog.Logger) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	env := v.GetString("app.env")
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
		env = v.GetString("app.env")
	}

	v.SetConfigName("gamedash")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/gamedash")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Info("config file loaded", slog.String("path", v.ConfigFileUsed()))
	}

	cfg := FromViper(v)
	cfg.App.Environment = env

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) *Config {
	env := v.GetString("app.env")
	return &Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: env,
			Version:     v.GetString("app.version"),
			LogLevel:    v.GetString("log.level"),
			LogFormat:   v.GetString("log.format"),
			Debug:       v.GetBool("app.debug") || env == "development",
		},
		Backend: BackendConfig{
			BaseURL:           strings.TrimRight(v.GetString("backend.base_url"), "/"),
			RequestTimeout:    v.GetDuration("backend.request_timeout"),
			RequestsPerSecond: v.GetFloat64("backend.requests_per_second"),
			Burst:             v.GetInt("backend.burst"),
		},
		Sync: SyncConfig{
			PollInterval:     v.GetDuration("sync.poll_interval"),
			MaxDuration:      v.GetDuration("sync.max_duration"),
			DefaultLimit:     v.GetInt("sync.default_limit"),
			RejectConcurrent: v.GetBool("sync.reject_concurrent"),
			ScheduleEnabled:  v.GetBool("sync.schedule_enabled"),
			ScheduleCron:     v.GetString("sync.schedule_cron"),
			ScheduleAll:      v.GetBool("sync.schedule_all"),
		},
		Pagination: PaginationConfig{
			PageSize:      v.GetInt("pagination.page_size"),
			FetchPageSize: v.GetInt("pagination.fetch_page_size"),
		},
		Redis: RedisConfig{
			Enabled:      v.GetBool("redis.enabled"),
			Host:         v.GetString("redis.host"),
			Port:         v.GetString("redis.port"),
			Password:     v.GetString("redis.password"),
			DB:           v.GetInt("redis.db"),
			DialTimeout:  v.GetDuration("redis.dial_timeout"),
			ReadTimeout:  v.GetDuration("redis.read_timeout"),
			WriteTimeout: v.GetDuration("redis.write_timeout"),
			PoolSize:     v.GetInt("redis.pool_size"),
			TTL:          v.GetDuration("redis.ttl"),
		},
		Asynq: AsynqConfig{
			RedisAddr:       fmt.Sprintf("%s:%s", v.GetString("redis.host"), v.GetString("redis.port")),
			RedisPassword:   v.GetString("redis.password"),
			RedisDB:         v.GetInt("asynq.redis_db"),
			Concurrency:     v.GetInt("asynq.concurrency"),
			Queues:          parseQueues(v.GetString("asynq.queues")),
			StrictPriority:  v.GetBool("asynq.strict_priority"),
			ShutdownTimeout: v.GetDuration("asynq.shutdown_timeout"),
		},
		Export: ExportConfig{
			Dir:               v.GetString("export.dir"),
			Retention:         v.GetDuration("export.retention"),
			SnapshotAfterSync: v.GetBool("export.snapshot_after_sync"),
			PruneCron:         v.GetString("export.prune_cron"),
		},
		Security: SecurityConfig{
			RateLimitRequests: v.GetInt("security.rate_limit_requests"),
			RateLimitDuration: v.GetDuration("security.rate_limit_duration"),
			AllowedOrigins:    splitList(v.GetString("security.allowed_origins")),
			SecureHeaders:     v.GetBool("security.secure_headers") || env == "production",
			RequestIDHeader:   v.GetString("security.request_id_header"),
		},
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetString("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			IdleTimeout:     v.GetDuration("server.idle_timeout"),
			MaxHeaderBytes:  v.GetInt("server.max_header_bytes"),
			GracefulTimeout: v.GetDuration("server.graceful_timeout"),
		},
	}
}

// Validate runs the basic checks and, in production, the strict ones
func (c *Config) Validate() error {
	if err := (&BasicValidator{}).Validate(c); err != nil {
		return err
	}
	if c.IsProduction() {
		return (&ProductionValidator{}).Validate(c)
	}
	return nil
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetRedisAddress returns the host:port of the cache Redis
func (c *Config) GetRedisAddress() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Keys are dotted; with the env key replacer app.env reads APP_ENV,
// backend.base_url reads BACKEND_BASE_URL and so on.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "gamedash")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.request_timeout", 15*time.Second)
	v.SetDefault("backend.requests_per_second", 20.0)
	v.SetDefault("backend.burst", 10)

	v.SetDefault("sync.poll_interval", 1500*time.Millisecond)
	v.SetDefault("sync.max_duration", 10*time.Minute)
	v.SetDefault("sync.default_limit", 40)
	v.SetDefault("sync.reject_concurrent", false)
	v.SetDefault("sync.schedule_enabled", false)
	v.SetDefault("sync.schedule_cron", "@every 6h")
	v.SetDefault("sync.schedule_all", false)

	v.SetDefault("pagination.page_size", 10)
	v.SetDefault("pagination.fetch_page_size", 100)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("asynq.redis_db", 1)
	v.SetDefault("asynq.concurrency", 2)
	v.SetDefault("asynq.queues", "critical:6,default:3,low:1")
	v.SetDefault("asynq.strict_priority", false)
	v.SetDefault("asynq.shutdown_timeout", 30*time.Second)

	v.SetDefault("export.dir", "./exports")
	v.SetDefault("export.retention", 7*24*time.Hour)
	v.SetDefault("export.snapshot_after_sync", false)
	v.SetDefault("export.prune_cron", "@daily")

	v.SetDefault("security.rate_limit_requests", 100)
	v.SetDefault("security.rate_limit_duration", time.Minute)
	v.SetDefault("security.allowed_origins", "*")
	v.SetDefault("security.secure_headers", false)
	v.SetDefault("security.request_id_header", "X-Request-ID")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.max_header_bytes", 1<<20)
	v.SetDefault("server.graceful_timeout", 30*time.Second)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	for _, pair := range strings.Split(queuesStr, ",") {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			name := strings.TrimSpace(parts[0])
			priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err == nil {
				queues[name] = priority
			}
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}
