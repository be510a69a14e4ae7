// Package config provides configuration loading and validation for the service.
// Configuration is layered: built-in defaults -> base.yaml -> {profile}.yaml ->
// APP_ environment variables.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds the SQLite file location and connection pool settings.
type DatabaseConfig struct {
	Path            string               `koanf:"path"`
	MaxOpenConns    int                  `koanf:"max_open_conns"`
	MaxIdleConns    int                  `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration        `koanf:"conn_max_lifetime"`
	AcquireTimeout  time.Duration        `koanf:"acquire_timeout"`
	BusyTimeout     time.Duration        `koanf:"busy_timeout"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
