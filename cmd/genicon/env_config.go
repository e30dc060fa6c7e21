package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rbi-app/genicon/internal/config"
)

// envPrefix marks variables owned by genicon.
const envPrefix = "GENICON_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // GENICON_CONFIG: config file name or path
	BaseDir    string // GENICON_BASE_DIR: directory containing src-tauri
	Quiet      *bool  // GENICON_QUIET: suppress status lines (nil = unset)
}

// knownEnvVars lists valid GENICON_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"GENICON_CONFIG":   true,
	"GENICON_BASE_DIR": true,
	"GENICON_QUIET":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("GENICON_CONFIG"),
		BaseDir:    os.Getenv("GENICON_BASE_DIR"),
	}

	if v := os.Getenv("GENICON_QUIET"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Quiet = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized GENICON_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.BaseDir != "" {
		cfg.BaseDir = env.BaseDir
	}
	if env.Quiet != nil {
		cfg.Quiet = *env.Quiet
	}
}
