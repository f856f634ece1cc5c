package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bochaoli95/go-mdresume/internal/config"
)

const envPrefix = "MDRESUME_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MDRESUME_CONFIG: config file name or path
	LogLevel   string // MDRESUME_LOG_LEVEL: debug, info, warn, error
	Backbone   string // MDRESUME_BACKBONE: backbone name or path
	OutputDir  string // MDRESUME_OUTPUT_DIR: default output directory
}

// knownEnvVars lists valid MDRESUME_* environment variables.
var knownEnvVars = map[string]bool{
	"MDRESUME_CONFIG":     true,
	"MDRESUME_LOG_LEVEL":  true,
	"MDRESUME_BACKBONE":   true,
	"MDRESUME_OUTPUT_DIR": true,
}

// loadEnvConfig reads the recognized MDRESUME_* variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("MDRESUME_CONFIG"),
		LogLevel:   getenv("MDRESUME_LOG_LEVEL"),
		Backbone:   getenv("MDRESUME_BACKBONE"),
		OutputDir:  getenv("MDRESUME_OUTPUT_DIR"),
	}
}

// warnUnknownEnvVars reports MDRESUME_* variables nobody reads.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays environment values on cfg.
// Order of precedence: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.Backbone != "" {
		cfg.Backbone = env.Backbone
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
