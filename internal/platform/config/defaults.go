package config

// Built-in values, used when no file or variable sets a key. Every key here
// can be set through an APP_ variable, because the env layer only resolves
// keys it has already seen.
const (
	DefaultPort        = 8080
	DefaultBaseURL     = "http://localhost:8080"
	DefaultServiceName = "automacao-formulario"
	DefaultMaxSessions = 1000
)

func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":          "0.0.0.0",
			"port":          DefaultPort,
			"read_timeout":  "5s",
			"write_timeout": "10s",
			"idle_timeout":  "2m",
		},
		"log": map[string]any{
			"level":  "info",
			"format": "json",
		},
		"client": map[string]any{
			"base_url": DefaultBaseURL,
			"timeout":  "10s",
			"retry": map[string]any{
				"max_attempts":     3,
				"initial_interval": "100ms",
				"max_interval":     "2s",
				"multiplier":       2.0,
			},
			"circuit_breaker": map[string]any{
				"max_failures":    5,
				"timeout":         "30s",
				"half_open_limit": 1,
			},
			"rate_limit": map[string]any{
				"requests_per_second": 0.0,
				"burst_size":          10,
			},
		},
		"telemetry": map[string]any{
			"enabled":      false,
			"exporter":     "stdout",
			"endpoint":     "",
			"service_name": DefaultServiceName,
		},
		"form": map[string]any{
			"success_notice_duration": "3s",
			"session_ttl":             "30m",
			"max_sessions":            DefaultMaxSessions,
		},
	}
}
