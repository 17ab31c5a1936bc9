// Package registry implements the on-disk bookkeeping of which components
// are installed into a prefix: the "components" list, each component's
// part manifest, and the installer-format version marker, together with the
// builder and uninstaller that mutate them through a transaction.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package registry

import (
	"bufio"
	"os"
	"strings"

	"toolchainctl/pkg/ctlerrors"
	"toolchainctl/pkg/prefix"
	"toolchainctl/pkg/txn"
)

// ⭐ CORE-004: Registry bookkeeping files - 📝 Fixed filenames under metadata root

const (
	// ComponentsFileName lists the name of every installed component, one
	// per line.
	ComponentsFileName = "components"
	// VersionFileName holds the installer-format version marker.
	VersionFileName = "version"
	// SupportedVersion is the only installer-format version this
	// implementation understands; Open refuses to proceed against a prefix
	// stamped with anything else.
	SupportedVersion = "3"
)

// Registry is the entry point for listing, finding, adding, and removing
// components within one install prefix.
type Registry struct {
	prefix prefix.Prefix
}

// Open validates the prefix's version marker, if one exists, and returns a
// Registry bound to it. A prefix with no version marker yet (a fresh,
// never-installed-into prefix) opens successfully.
func Open(p prefix.Prefix) (*Registry, error) {
	r := &Registry{prefix: p}
	v, ok, err := r.readVersion()
	if err != nil {
		return nil, err
	}
	if ok && v != SupportedVersion {
		return nil, ctlerrors.NewUnsupportedInstallerVersion(v, SupportedVersion)
	}
	return r, nil
}

// Prefix returns the install prefix the registry is bound to.
func (r *Registry) Prefix() prefix.Prefix {
	return r.prefix
}

func (r *Registry) relComponentsFile() string {
	return r.prefix.RelManifestFile(ComponentsFileName)
}

func (r *Registry) relComponentManifest(name string) string {
	return r.prefix.RelManifestFile("manifest-" + name)
}

// readVersion reads the version marker, returning ("", false, nil) when it
// does not yet exist.
func (r *Registry) readVersion() (string, bool, error) {
	path := r.prefix.ManifestFile(VersionFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, ctlerrors.NewFilesystemError("read_version", path, err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// writeVersion stamps the prefix with SupportedVersion, backing up any
// prior marker through the transaction.
func (r *Registry) writeVersion(tx *txn.Transaction) error {
	rel := r.prefix.RelManifestFile(VersionFileName)
	if err := tx.ModifyFile(rel); err != nil {
		return err
	}
	abs := r.prefix.AbsPath(rel)
	if err := os.WriteFile(abs, []byte(SupportedVersion), 0o644); err != nil {
		return ctlerrors.NewFilesystemError("write_version", abs, err)
	}
	return nil
}

// List returns every installed component. A prefix with no components file
// yet (nothing has ever been installed) returns an empty list, not an
// error: a fresh prefix is a legitimate starting state, not a corrupt one.
func (r *Registry) List() ([]*Component, error) {
	path := r.prefix.ManifestFile(ComponentsFileName)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, ctlerrors.NewFilesystemError("list_components", path, err)
	}
	defer f.Close()

	var out []*Component
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		out = append(out, &Component{registry: r, Name: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, ctlerrors.NewFilesystemError("list_components", path, err)
	}
	return out, nil
}

// Find returns the named component, or ok=false if no component with that
// name is installed.
func (r *Registry) Find(name string) (component *Component, ok bool, err error) {
	all, err := r.List()
	if err != nil {
		return nil, false, err
	}
	for _, c := range all {
		if c.Name == name {
			return c, true, nil
		}
	}
	return nil, false, nil
}

// Add begins installing a new component named name, staging every part it
// contributes through tx. Callers must call ComponentBuilder.Finish to commit the
// component's manifest and register it in the components list.
func (r *Registry) Add(name string, tx *txn.Transaction) *ComponentBuilder {
	return &ComponentBuilder{registry: r, name: name, tx: tx}
}
