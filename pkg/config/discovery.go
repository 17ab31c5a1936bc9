// Package config loads toolctl's settings from a config file, environment
// variables, and CLI flags, in that ascending priority order.
//
// This file resolves which directories to search for a config file and
// expands a "~/"-prefixed path into an absolute one.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoveryConfig holds configuration for path discovery behavior.
type DiscoveryConfig struct {
	// EnvVarName is the environment variable name carrying a
	// colon-separated override of the default search paths.
	EnvVarName string

	// DefaultSearchPaths are the fallback paths when the env var is not set.
	DefaultSearchPaths []string

	// ConfigFileName is the name of the configuration file to search for.
	ConfigFileName string
}

// PathDiscovery resolves the directories toolctl searches for its config
// file, honoring an env var override over the built-in defaults.
type PathDiscovery struct {
	config DiscoveryConfig
}

// NewPathDiscovery creates a new PathDiscovery with the specified configuration.
func NewPathDiscovery(config DiscoveryConfig) *PathDiscovery {
	return &PathDiscovery{config: config}
}

// NewGenericPathDiscovery builds a PathDiscovery for an application named
// appName, searching "." and "~/.<appName>" for configFile by default and honoring
// $<APPNAME>_CONFIG as an override.
func NewGenericPathDiscovery(appName, configFile string) *PathDiscovery {
	return NewPathDiscovery(DiscoveryConfig{
		EnvVarName:         strings.ToUpper(appName) + "_CONFIG",
		DefaultSearchPaths: []string{".", "~/." + appName},
		ConfigFileName:     configFile,
	})
}

// GetConfigSearchPaths returns the search paths for configuration files,
// preferring a colon-separated override from the env var over the defaults.
func (p *PathDiscovery) GetConfigSearchPaths() []string {
	if envPath := os.Getenv(p.config.EnvVarName); envPath != "" {
		paths := strings.Split(envPath, ":")
		result := make([]string, 0, len(paths))
		for _, path := range paths {
			result = append(result, strings.TrimSpace(path))
		}
		return result
	}
	return p.config.DefaultSearchPaths
}

// ExpandPath expands a leading "~/" into the user's home directory. Paths
// without that prefix are returned unchanged.
func (p *PathDiscovery) ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
