package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFromTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
prefix_root = "/opt/toolchains/stable"
metadata_dir = "lib/rustlib"
quiet = true
`), 0o644))

	settings, err := LoadSettings(viper.New(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, "/opt/toolchains/stable", settings.PrefixRoot)
	assert.True(t, settings.Quiet)
}

func TestLoadSettingsMissingFileFallsBackToDefaults(t *testing.T) {
	settings, err := LoadSettings(viper.New(), []string{t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "", settings.PrefixRoot)
}

func TestLoadSettingsEnvironmentOverride(t *testing.T) {
	t.Setenv("TOOLCTL_PREFIX_ROOT", "/opt/env-prefix")
	settings, err := LoadSettings(viper.New(), []string{t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "/opt/env-prefix", settings.PrefixRoot)
}

func TestLoadSettingsTOMLDirect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`prefix_root = "/srv/toolchains"`), 0o644))

	settings, err := LoadSettingsTOML(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/toolchains", settings.PrefixRoot)
}
