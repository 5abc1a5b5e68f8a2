// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// ErrMissingRequiredConfig is returned when a required setting is empty
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// maxSyncLimit is the largest bounded sync the backend accepts
const maxSyncLimit = 40

// BasicValidator performs basic configuration validation
type BasicValidator struct{}

// Validate performs basic validation
func (v *BasicValidator) Validate(cfg *Config) error {
	if err := validateRequiredFields(cfg); err != nil {
		return err
	}

	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend base_url must be an absolute URL, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.RequestsPerSecond <= 0 {
		return fmt.Errorf("backend requests_per_second must be positive")
	}

	if cfg.Sync.PollInterval <= 0 {
		return fmt.Errorf("sync poll_interval must be positive")
	}
	if cfg.Sync.MaxDuration < 0 {
		return fmt.Errorf("sync max_duration cannot be negative")
	}
	if cfg.Sync.DefaultLimit < 1 || cfg.Sync.DefaultLimit > maxSyncLimit {
		return fmt.Errorf("sync default_limit must be between 1 and %d", maxSyncLimit)
	}
	if cfg.Sync.ScheduleEnabled && strings.TrimSpace(cfg.Sync.ScheduleCron) == "" {
		return fmt.Errorf("sync schedule_cron is required when scheduled sync is enabled")
	}

	if cfg.Pagination.PageSize < 1 {
		return fmt.Errorf("pagination page_size must be at least 1")
	}
	if cfg.Pagination.FetchPageSize < 1 || cfg.Pagination.FetchPageSize > 100 {
		return fmt.Errorf("pagination fetch_page_size must be between 1 and 100")
	}

	if cfg.Redis.Enabled && cfg.Redis.PoolSize <= 0 {
		return fmt.Errorf("redis pool_size must be positive")
	}

	if cfg.Export.Retention < 0 {
		return fmt.Errorf("export retention cannot be negative")
	}
	if cfg.Export.SnapshotAfterSync && strings.TrimSpace(cfg.Export.Dir) == "" {
		return fmt.Errorf("export dir is required when snapshots are enabled")
	}

	if cfg.Security.RateLimitRequests <= 0 {
		return fmt.Errorf("rate_limit_requests must be positive")
	}

	return nil
}

// ProductionValidator performs strict validation for production environments
type ProductionValidator struct{}

// Validate performs production-specific validation
func (v *ProductionValidator) Validate(cfg *Config) error {
	if !cfg.Security.SecureHeaders {
		return fmt.Errorf("secure headers must be enabled in production")
	}

	if len(cfg.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("allowed origins must be configured in production")
	}
	for _, origin := range cfg.Security.AllowedOrigins {
		if origin == "*" {
			return fmt.Errorf("wildcard origin (*) not allowed in production")
		}
	}

	if cfg.App.Debug {
		return fmt.Errorf("debug mode cannot be enabled in production")
	}

	return nil
}

// validateRequiredFields uses reflection to check required struct tags
func validateRequiredFields(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	return validateStruct(v, "")
}

func validateStruct(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		fieldName := fieldType.Name

		if prefix != "" {
			fieldName = prefix + "." + fieldName
		}

		if fieldType.Tag.Get("required") == "true" && isZeroValue(field) {
			return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, fieldName)
		}

		if field.Kind() == reflect.Struct && fieldType.Type.PkgPath() == t.PkgPath() {
			if err := validateStruct(field, fieldName); err != nil {
				return err
			}
		}
	}

	return nil
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
