// Package fileops provides file operations and utilities for CLI applications.
//
// This file matches traversal paths against a set of exclusion globs, the
// way install staging skips a component source tree's own version-control
// directories.
package fileops

import (
	"path/filepath"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// ⭐ EXTRACT-006: File exclusion system extracted - 🔧

// PatternMatcher matches a relative path against a fixed set of doublestar
// glob patterns.
type PatternMatcher struct {
	patterns []string
}

// NewPatternMatcher creates a new PatternMatcher with the given patterns.
// A bare directory name like "node_modules" is expanded so it also matches
// the directory anywhere below the traversal root, not only at its root.
func NewPatternMatcher(patterns []string) *PatternMatcher {
	expanded := make([]string, 0, len(patterns)*2)
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		expanded = append(expanded, p)
		if !hasGlobMeta(p) {
			expanded = append(expanded, "**/"+p, "**/"+p+"/**")
		}
	}
	return &PatternMatcher{patterns: expanded}
}

// ShouldExclude reports whether path matches any of the matcher's patterns.
func (pm *PatternMatcher) ShouldExclude(path string) bool {
	normalized := filepath.ToSlash(path)
	for _, pattern := range pm.patterns {
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
	}
	return false
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
