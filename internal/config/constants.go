package config

import "time"

const (
	envPort           = "PORT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envGameClockMode  = "GAME_CLOCK_MODE"
	envScenarioFile   = "DEMO_SCENARIO_FILE"
	envThrottle       = "DEMO_THROTTLE_INTERVAL"
	envAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	envAdminToken     = "ADMIN_TOKEN"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultServiceName = "scorebug-service"
	defaultClockMode   = "lenient"
	// Roughly 30 frames per second; overlay renders cost more than the ticks are worth beyond that.
	defaultThrottleInterval = 33 * time.Millisecond
	defaultAllowedOrigins   = "*"
)
