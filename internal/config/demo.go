package config

import "time"

// DemoConfig controls demo playback.
type DemoConfig struct {
	ScenarioFile     string        // optional YAML catalog; empty uses the built-in scenario
	ThrottleInterval time.Duration // minimum gap between streamed frames
}

func loadDemo() DemoConfig {
	return DemoConfig{
		ScenarioFile:     envOrDefault(envScenarioFile, ""),
		ThrottleInterval: durationEnvOrDefault(envThrottle, defaultThrottleInterval),
	}
}
