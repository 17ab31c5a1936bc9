// Package fileops provides file operations and utilities for CLI applications.
//
// This file validates the paths the transaction layer and component
// traversal accept before touching the filesystem: no path traversal, no
// embedded control bytes, and (for ValidateExistence/ValidateReadable) the
// path actually resolves to something on disk.
package fileops

import (
	"fmt"
	"os"
	"strings"
)

// ⭐ EXTRACT-006: Path validation system extracted - 🛡️

// ValidatePath rejects an empty path or one containing path-traversal
// segments, environment/home references, or control characters.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if !isSecurePath(path) {
		return fmt.Errorf("path contains unsafe elements: %s", path)
	}
	return nil
}

// ValidateExistence checks that path exists on disk.
func ValidateExistence(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("cannot access path %s: %v", path, err)
	}
	return nil
}

// ValidateReadable checks that path exists and can be opened for reading.
func ValidateReadable(path string) error {
	if err := ValidateExistence(path); err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("path is not readable: %s (%v)", path, err)
	}
	file.Close()
	return nil
}

func isSecurePath(path string) bool {
	if strings.Contains(path, "..") {
		return false
	}
	suspicious := []string{"~", "$", "\x00", "\r", "\n"}
	for _, pattern := range suspicious {
		if strings.Contains(path, pattern) {
			return false
		}
	}
	return true
}
