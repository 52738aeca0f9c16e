package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/platinummonkey/dotnetscan/pkg/observability"
)

// Config holds process-level settings read from the environment
type Config struct {
	// Logging
	LogLevel  observability.LogLevel
	LogFormat string // text or json

	// Metrics
	MetricsEnabled bool

	// AnalyzeGeneratedCode overrides the project property when set
	AnalyzeGeneratedCode *bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{
		LogLevel:       observability.ParseLogLevel(getEnv("DOTNETSCAN_LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("DOTNETSCAN_LOG_FORMAT", "text")),
		MetricsEnabled: getEnvBool("DOTNETSCAN_METRICS_ENABLED", false),
	}

	if value := os.Getenv("DOTNETSCAN_ANALYZE_GENERATED_CODE"); value != "" {
		if b, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			cfg.AnalyzeGeneratedCode = &b
		}
	}

	return cfg
}

// Apply writes the environment overrides into the project properties
func (c *Config) Apply(project *Project) {
	if c.AnalyzeGeneratedCode == nil {
		return
	}

	key := AnalyzeGeneratedCodeProperty(project.Language)
	value := strconv.FormatBool(*c.AnalyzeGeneratedCode)
	project.SetProperty(key, value)
	for i := range project.Modules {
		if _, ok := project.Modules[i].Properties[key]; ok {
			project.Modules[i].Properties[key] = value
		}
	}
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}
