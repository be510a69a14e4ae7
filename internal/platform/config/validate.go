package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	if d.Path == "" {
		errs = append(errs, errors.New("database.path must not be empty"))
	}
	if d.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must be >= 1, got %d", d.MaxOpenConns))
	}
	if d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns {
		errs = append(errs, fmt.Errorf("database.max_idle_conns must be between 0 and max_open_conns, got %d",
			d.MaxIdleConns))
	}
	if d.AcquireTimeout <= 0 {
		errs = append(errs, errors.New("database.acquire_timeout must be positive"))
	}
	if d.BusyTimeout < 0 {
		errs = append(errs, errors.New("database.busy_timeout must not be negative"))
	}
	if d.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("database.circuit_breaker.max_failures must be >= 1, got %d",
			d.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
