package config

import "github.com/preston-bernstein/scorebug-service/internal/clockfmt"

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	GameClockMode clockfmt.Mode
	Demo          DemoConfig
	HTTP          HTTPConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		GameClockMode: clockModeEnvOrDefault(envGameClockMode, defaultClockMode),
		Demo:          loadDemo(),
		HTTP:          loadHTTP(),
		Metrics:       loadMetrics(),
	}
}

func clockModeEnvOrDefault(key, defaultValue string) clockfmt.Mode {
	if mode, ok := clockfmt.ParseMode(envOrDefault(key, defaultValue)); ok {
		return mode
	}
	mode, _ := clockfmt.ParseMode(defaultValue)
	return mode
}
