// Package prefix models the install prefix: the absolute root of a
// toolchain installation and the handful of pure path computations every
// other package in this module needs from it.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package prefix

import (
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// ⭐ CORE-002: Install prefix value object - 📝 Metadata layout constant

// MetadataRoot is the fixed subdirectory of the prefix that holds the
// registry's bookkeeping files (component manifests, the components list,
// the version marker).
const MetadataRoot = "lib/rustlib"

// Prefix owns an absolute install root and derives metadata-file paths from
// it. It performs no I/O; every method here is total over its inputs, with
// the single precondition documented on AbsPath: the
// relative path passed in must actually be relative.
type Prefix struct {
	root string
}

// New builds a Prefix rooted at root. root is taken as given; callers that
// need an absolute root should resolve it themselves (e.g. filepath.Abs)
// before calling New.
func New(root string) Prefix {
	return Prefix{root: filepath.Clean(root)}
}

// Root returns the prefix's absolute root directory.
func (p Prefix) Root() string {
	return p.root
}

// MetadataRootRel returns the prefix-relative path of the metadata
// directory, using the host path separator.
func (p Prefix) MetadataRootRel() string {
	return filepath.FromSlash(MetadataRoot)
}

// RelManifestFile returns the prefix-relative path of a file named `name`
// under the metadata directory (e.g. "components", "version", or
// "manifest-<component>").
func (p Prefix) RelManifestFile(name string) string {
	return filepath.Join(p.MetadataRootRel(), name)
}

// ManifestFile returns the absolute path of a file named `name` under the
// metadata directory.
func (p Prefix) ManifestFile(name string) string {
	return p.AbsPath(p.RelManifestFile(name))
}

// AbsPath resolves rel (which must be relative) against the prefix root.
//
// Precondition: rel must be a relative path. An absolute rel is a caller
// bug, not a runtime condition to recover from; debug builds of the
// reference implementation this is ported from panic on it; this
// implementation instead returns the prefix root unchanged. A relative rel
// is joined securely, so that even a hostile or corrupt path containing
// ".." can never resolve outside the prefix root — callers that need to
// distinguish "escaped the prefix" from
// "legitimate nested path" should validate rel themselves before calling.
func (p Prefix) AbsPath(rel string) string {
	if filepath.IsAbs(rel) {
		return p.root
	}
	joined, err := securejoin.SecureJoin(p.root, rel)
	if err != nil {
		return p.root
	}
	return joined
}

// RelPath returns abs expressed relative to the prefix root. It is the
// inverse of AbsPath for paths that are actually under the root.
func (p Prefix) RelPath(abs string) (string, error) {
	return filepath.Rel(p.root, abs)
}
