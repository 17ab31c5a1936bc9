// This file holds the installer's own configuration schema: a small,
// concrete Settings struct plus two loading paths — a viper-backed one that
// merges file and environment sources (and any flags the caller has bound
// into the viper instance), and a direct
// BurntSushi/toml decode for callers (and tests) that just want to read one
// config file without the full discovery/merge machinery.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// ⭐ CORE-010: Installer settings schema - 📝 Concrete application config

// Settings is the concrete configuration schema for the toolchain installer
// CLI: where toolchains get installed, what the metadata directory is
// called, and which installer-format version this build of toolctl expects
// an existing prefix to carry.
type Settings struct {
	// PrefixRoot is the default install prefix used when a command does not
	// receive an explicit --prefix flag.
	PrefixRoot string `yaml:"prefix_root" toml:"prefix_root" mapstructure:"prefix_root"`

	// MetadataDirName is decoded from the metadata_dir key. No other package
	// reads it: the metadata directory is always prefix.MetadataRoot.
	MetadataDirName string `yaml:"metadata_dir" toml:"metadata_dir" mapstructure:"metadata_dir"`

	// SupportedVersion is decoded from the supported_version key. No other
	// package reads it: the registry always accepts only
	// registry.SupportedVersion.
	SupportedVersion string `yaml:"supported_version" toml:"supported_version" mapstructure:"supported_version"`

	// Quiet suppresses the console notification sink's stdout events,
	// leaving only warnings and rollback failures visible.
	Quiet bool `yaml:"quiet" toml:"quiet" mapstructure:"quiet"`
}

// DefaultSettings returns the zero-configuration defaults: an empty prefix
// root (the CLI layer requires --prefix or $TOOLCTL_PREFIX_ROOT in that case),
// and no metadata/version overrides.
func DefaultSettings() *Settings {
	return &Settings{}
}

// ⭐ CORE-010: Viper-backed loading - 🔧 File + env + flag merge

// LoadSettings merges, in ascending priority, the defaults, a config file
// discovered by name (toolctl.{yaml,toml,json}) under the given search
// directories, TOOLCTL_-prefixed environment variables, and finally any
// flag values the caller has already bound into v (cmd/toolctl binds none:
// it passes a fresh viper and applies its own flags to the result). Each
// search directory is passed through
// PathDiscovery.ExpandPath first, so a caller can write "~/.config/toolctl"
// instead of resolving the home directory itself; an empty searchDirs uses
// $TOOLCTL_CONFIG (colon-separated) or, failing that, "." and "~/.toolctl".
func LoadSettings(v *viper.Viper, searchDirs []string) (*Settings, error) {
	if v == nil {
		v = viper.New()
	}
	discovery := NewGenericPathDiscovery("toolctl", "toolctl")
	if len(searchDirs) == 0 {
		searchDirs = discovery.GetConfigSearchPaths()
	}
	v.SetConfigName("toolctl")
	for _, dir := range searchDirs {
		v.AddConfigPath(discovery.ExpandPath(dir))
	}
	v.SetEnvPrefix("TOOLCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about, so bind each one to its
	// TOOLCTL_ variable explicitly.
	for _, key := range []string{"prefix_root", "metadata_dir", "supported_version", "quiet"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("config: reading toolctl config: %w", err)
		}
	}

	settings := DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("config: decoding toolctl config: %w", err)
	}
	return settings, nil
}

// ⭐ CORE-010: Direct TOML decode - 🔧 Single-file, no-discovery path

// LoadSettingsTOML decodes a single TOML file directly into a Settings
// value, bypassing viper's search/merge behavior entirely. Used by
// commands invoked with an explicit --config path, where discovery would
// be surprising.
func LoadSettingsTOML(path string) (*Settings, error) {
	settings := DefaultSettings()
	if _, err := toml.DecodeFile(path, settings); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return settings, nil
}
