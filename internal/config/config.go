package config

import (
	"os"
	"strings"

	"pcoslens/internal/errors"
)

// DefaultOutputPath is where the results document is written, relative to the working directory.
const DefaultOutputPath = "pcos_analysis_results.json"

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig
	Input  InputConfig
	Output OutputConfig
}

// LogConfig holds diagnostic logging settings
type LogConfig struct {
	Level string
}

// InputConfig holds dataset reading settings
type InputConfig struct {
	// SheetName selects the worksheet for .xlsx inputs; empty means the first sheet.
	SheetName string
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Path string
}

// Load reads configuration from environment variables and validates it.
// Only diagnostics and xlsx sheet selection are environment-driven; the
// output path is always DefaultOutputPath.
func Load() (*Config, error) {
	config := &Config{
		Log:    *loadLogConfig(),
		Input:  *loadInputConfig(),
		Output: OutputConfig{Path: DefaultOutputPath},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// loadLogConfig reads LOG_LEVEL; an unknown value falls back to WARN so a
// variable meant for another tool never blocks the report.
func loadLogConfig() *LogConfig {
	level := strings.ToUpper(strings.TrimSpace(getEnvOrDefault("LOG_LEVEL", "WARN")))
	switch level {
	case "ERROR", "WARN", "INFO", "DEBUG", "TRACE":
	default:
		level = "WARN"
	}
	return &LogConfig{Level: level}
}

func loadInputConfig() *InputConfig {
	return &InputConfig{
		SheetName: getEnvOrDefault("PCOS_SHEET", ""),
	}
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Output.Path) == "" {
		return errors.ConfigInvalid("output path is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
