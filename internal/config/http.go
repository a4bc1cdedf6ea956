package config

import "strings"

// HTTPConfig controls browser-facing HTTP behavior.
type HTTPConfig struct {
	AllowedOrigins []string
	AdminToken     string // bearer token for /admin routes; empty disables them
}

func loadHTTP() HTTPConfig {
	return HTTPConfig{
		AllowedOrigins: listEnvOrDefault(envAllowedOrigins, defaultAllowedOrigins),
		AdminToken:     envOrDefault(envAdminToken, ""),
	}
}

func listEnvOrDefault(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(envOrDefault(key, defaultValue), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{defaultValue}
	}
	return out
}
