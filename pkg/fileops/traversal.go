// Package fileops provides file operations and utilities for CLI applications.
//
// This file walks a directory tree depth-first, skipping anything matched
// by an exclusion pattern, the way component staging walks a source tree
// while leaving its version-control directories behind.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

// ⭐ EXTRACT-006: Directory traversal system extracted - 🔍

// FileVisitor is called for each file or directory encountered during traversal.
type FileVisitor func(path string, info os.FileInfo, err error) error

// Traverser walks a directory tree, applying its configured exclusions.
type Traverser struct {
	matcher *PatternMatcher
}

// NewTraverser creates a Traverser with no exclusions.
func NewTraverser() *Traverser {
	return &Traverser{}
}

// NewTraverserWithExclusions creates a Traverser that skips any path
// matching one of the given patterns.
func NewTraverserWithExclusions(patterns []string) *Traverser {
	return &Traverser{matcher: NewPatternMatcher(patterns)}
}

// Walk visits every entry under root, depth-first, following symlinks only
// as plain files (never descending into a symlinked directory).
func (t *Traverser) Walk(root string, visitor FileVisitor) error {
	if err := ValidatePath(root); err != nil {
		return fmt.Errorf("invalid root path: %v", err)
	}
	if err := ValidateExistence(root); err != nil {
		return err
	}
	return t.walk(root, root, visitor)
}

func (t *Traverser) walk(root, path string, visitor FileVisitor) error {
	info, err := os.Lstat(path)
	if err != nil {
		return visitor(path, nil, err)
	}

	if rel, relErr := filepath.Rel(root, path); relErr == nil && rel != "." {
		if t.matcher != nil && t.matcher.ShouldExclude(rel) {
			if info.IsDir() {
				return nil
			}
			return nil
		}
	}

	if err := visitor(path, info, nil); err != nil {
		if err == filepath.SkipDir && info.IsDir() {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return visitor(path, info, err)
	}
	for _, entry := range entries {
		if err := t.walk(root, filepath.Join(path, entry.Name()), visitor); err != nil {
			return err
		}
	}
	return nil
}
