package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 4
	defaultMaxIdleConns = 2

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the built-in configuration values. They are loaded first
// and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.path":                            "todo.db",
		"database.max_open_conns":                  defaultMaxOpenConns,
		"database.max_idle_conns":                  defaultMaxIdleConns,
		"database.conn_max_lifetime":               "1h",
		"database.acquire_timeout":                 "2s",
		"database.busy_timeout":                    "5s",
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-web",
	}
}
