package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rbi-app/genicon/internal/config"
	"github.com/rbi-app/genicon/internal/fileutil"
	"github.com/rbi-app/genicon/internal/hints"
)

// loadSettings builds the effective config from all sources.
// Priority: CLI flags > env vars > config file > defaults.
func loadSettings(common *commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		if common.verbose {
			fmt.Fprintf(env.Stderr, "Config: %s\n", name)
		}
	}

	applyEnvConfig(envCfg, cfg)

	if common.baseDir != "" {
		cfg.BaseDir = common.baseDir
	}

	return cfg, nil
}

// resolveBaseDir returns an absolute base directory.
// An empty value means the working directory.
func resolveBaseDir(baseDir string, env *Environment) (string, error) {
	if filepath.IsAbs(baseDir) {
		return filepath.Clean(baseDir), nil
	}

	wd, err := env.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return filepath.Join(wd, baseDir), nil
}
