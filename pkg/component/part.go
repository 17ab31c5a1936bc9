// Package component models the parts a toolchain component installs:
// a (kind, relative-path) pair plus the line-oriented textual codec used to
// persist a component's manifest on disk.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package component

import (
	"path/filepath"
	"strings"
)

// ⭐ CORE-001: Component part modeling - 🔧 Part kind enumeration

// Kind identifies what a Part represents on disk.
type Kind struct {
	name string
}

var (
	// KindFile is a regular file installed by a component.
	KindFile = Kind{name: "file"}
	// KindDir is a directory (recursively installed) owned by a component.
	KindDir = Kind{name: "dir"}
)

// UnknownKind builds the catch-all kind for manifest tokens this
// implementation does not recognize. It is read from disk for forward
// compatibility with newer installer formats, but a Builder never produces
// one and an Uninstaller refuses to act on one.
func UnknownKind(token string) Kind {
	return Kind{name: token}
}

// String returns the on-disk token for the kind.
func (k Kind) String() string {
	return k.name
}

// IsFile reports whether the kind is the file kind.
func (k Kind) IsFile() bool { return k == KindFile }

// IsDir reports whether the kind is the dir kind.
func (k Kind) IsDir() bool { return k == KindDir }

// IsUnknown reports whether the kind is neither file nor dir.
func (k Kind) IsUnknown() bool { return k != KindFile && k != KindDir }

func parseKind(token string) Kind {
	switch token {
	case KindFile.name:
		return KindFile
	case KindDir.name:
		return KindDir
	default:
		return UnknownKind(token)
	}
}

// ⭐ CORE-001: Component part modeling - 🔧 Part value object

// Part is a single file or directory entry belonging to a component, as
// recorded in its manifest. Path uses the host's main path separator; it is
// always relative to the install prefix.
type Part struct {
	Kind Kind
	Path string
}

// NewFilePart builds a file Part for the given prefix-relative path.
func NewFilePart(path string) Part {
	return Part{Kind: KindFile, Path: path}
}

// NewDirPart builds a dir Part for the given prefix-relative path.
func NewDirPart(path string) Part {
	return Part{Kind: KindDir, Path: path}
}

const manifestSep = "/"

// Encode renders the part as a single manifest line: "<kind>:<path>", with
// the host path separator normalized to "/" regardless of platform.
func (p Part) Encode() string {
	path := p.Path
	if filepath.Separator != '/' {
		path = strings.ReplaceAll(path, string(filepath.Separator), manifestSep)
	}
	var b strings.Builder
	b.WriteString(p.Kind.String())
	b.WriteByte(':')
	b.WriteString(path)
	return b.String()
}

// Decode parses a single manifest line into a Part. It returns false iff the
// line contains no ':' separator. Everything before the first ':' is the
// kind token (falling back to an Unknown kind for anything other than
// "file"/"dir"); everything after it is the path, with "/" translated back
// to the host separator.
//
// Both relative and absolute payloads parse successfully: earlier installers
// wrote absolute paths into manifests, and decoding only ever looks at the
// substring after the first ':'.
func Decode(line string) (Part, bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return Part{}, false
	}
	kind := parseKind(line[:idx])
	path := line[idx+1:]
	if filepath.Separator != '/' {
		path = strings.ReplaceAll(path, manifestSep, string(filepath.Separator))
	}
	return Part{Kind: kind, Path: path}, true
}
