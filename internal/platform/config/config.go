// Package config loads settings for the form server and formctl. Layers are
// merged in order, later ones winning: built-in defaults, base.yaml, the
// profile's YAML file, APP_ environment variables and caller overrides.
// Constraints are declared as validate tags on the structs below.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Form      FormConfig      `koanf:"form"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"          validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gte=0"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// ClientConfig holds settings for the HTTP client that drives a remote form
// service (formctl run --server).
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url" validate:"required,http_url"`
	Timeout        time.Duration        `koanf:"timeout"  validate:"gt=0"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig holds client-side token bucket settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	BurstSize         int     `koanf:"burst_size"          validate:"required_unless=RequestsPerSecond 0,gte=0"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"min=1"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"gt=0"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"gtefield=InitialInterval"`
	Multiplier      float64       `koanf:"multiplier"       validate:"gte=1"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"gt=0"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"gte=0"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"     validate:"oneof=stdout otlp"`
	Endpoint    string `koanf:"endpoint"     validate:"required_if=Enabled true Exporter otlp"`
	ServiceName string `koanf:"service_name"`
}

// FormConfig holds form session settings.
type FormConfig struct {
	// SuccessNoticeDuration is how long the success notice stays visible
	// before the form is cleared.
	SuccessNoticeDuration time.Duration `koanf:"success_notice_duration" validate:"gt=0"`
	// SessionTTL expires idle sessions. Zero disables expiry.
	SessionTTL time.Duration `koanf:"session_ttl" validate:"gte=0"`
	// MaxSessions caps open sessions. Zero means unlimited.
	MaxSessions int `koanf:"max_sessions" validate:"gte=0"`
}
