// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package config

import (
	"os"
	"testing"
)

// ⭐ EXTRACT-001: Package validation - Path discovery test - 🧪
func TestPathDiscovery(t *testing.T) {
	discovery := NewGenericPathDiscovery("myapp", "myapp")

	defaultPaths := discovery.GetConfigSearchPaths()
	expectedPaths := []string{".", "~/.myapp"}
	if len(defaultPaths) != len(expectedPaths) {
		t.Fatalf("expected %d default paths, got %d", len(expectedPaths), len(defaultPaths))
	}
	for i, p := range expectedPaths {
		if defaultPaths[i] != p {
			t.Errorf("expected default path %q, got %q", p, defaultPaths[i])
		}
	}
}

func TestPathDiscoveryEnvOverride(t *testing.T) {
	discovery := NewGenericPathDiscovery("myapp", "myapp")

	os.Setenv("MYAPP_CONFIG", "/etc/myapp:/opt/myapp")
	defer os.Unsetenv("MYAPP_CONFIG")

	paths := discovery.GetConfigSearchPaths()
	if len(paths) != 2 || paths[0] != "/etc/myapp" || paths[1] != "/opt/myapp" {
		t.Errorf("expected env override paths, got %v", paths)
	}
}

func TestPathDiscoveryExpandPath(t *testing.T) {
	discovery := NewGenericPathDiscovery("myapp", "myapp")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	expanded := discovery.ExpandPath("~/.config/myapp")
	if expanded == "~/.config/myapp" {
		t.Error("expected ~ to be expanded")
	}
	if len(expanded) <= len(home) {
		t.Errorf("expected expanded path under %s, got %s", home, expanded)
	}

	unchanged := discovery.ExpandPath("/already/absolute")
	if unchanged != "/already/absolute" {
		t.Errorf("expected absolute path unchanged, got %s", unchanged)
	}
}
