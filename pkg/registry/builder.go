package registry

import (
	"bufio"
	"fmt"
	"os"

	"toolchainctl/pkg/component"
	"toolchainctl/pkg/ctlerrors"
	"toolchainctl/pkg/txn"
)

// ⭐ CORE-004: Component builder - 🔧 Stages parts, writes manifest on Finish

// ComponentBuilder accumulates the parts of a new component as they are
// staged through a transaction, then writes the component's manifest and
// registers it once every part has landed successfully.
type ComponentBuilder struct {
	registry *Registry
	name     string
	parts    []component.Part
	tx       *txn.Transaction
}

func (b *ComponentBuilder) guardReserved(relpath string) error {
	if component.IsReserved(relpath) {
		return ctlerrors.NewPreconditionViolated("reserved_path", relpath)
	}
	return nil
}

// CopyFile stages relpath as a copy of src.
func (b *ComponentBuilder) CopyFile(relpath, src string) error {
	if err := b.guardReserved(relpath); err != nil {
		return err
	}
	if err := b.tx.CopyFile(b.name, relpath, src); err != nil {
		return err
	}
	b.parts = append(b.parts, component.NewFilePart(relpath))
	return nil
}

// CopyDir stages relpath as a recursive copy of src.
func (b *ComponentBuilder) CopyDir(relpath, src string) error {
	if err := b.guardReserved(relpath); err != nil {
		return err
	}
	if err := b.tx.CopyDir(b.name, relpath, src); err != nil {
		return err
	}
	b.parts = append(b.parts, component.NewDirPart(relpath))
	return nil
}

// MoveFile stages relpath by moving src into place.
func (b *ComponentBuilder) MoveFile(relpath, src string) error {
	if err := b.guardReserved(relpath); err != nil {
		return err
	}
	if err := b.tx.MoveFile(b.name, relpath, src); err != nil {
		return err
	}
	b.parts = append(b.parts, component.NewFilePart(relpath))
	return nil
}

// MoveDir stages relpath by moving the directory src into place.
func (b *ComponentBuilder) MoveDir(relpath, src string) error {
	if err := b.guardReserved(relpath); err != nil {
		return err
	}
	if err := b.tx.MoveDir(b.name, relpath, src); err != nil {
		return err
	}
	b.parts = append(b.parts, component.NewDirPart(relpath))
	return nil
}

// Finish writes the component's manifest (one encoded Part per line), adds
// its name to the components list, and stamps the registry's version
// marker. It must be the last call made against the builder.
func (b *ComponentBuilder) Finish() error {
	manifestRel := b.registry.relComponentManifest(b.name)
	f, err := b.tx.AddFile(b.name, manifestRel)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, part := range b.parts {
		if _, err := fmt.Fprintln(w, part.Encode()); err != nil {
			f.Close()
			return ctlerrors.NewFilesystemError("write_manifest", manifestRel, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return ctlerrors.NewFilesystemError("write_manifest", manifestRel, err)
	}
	if err := f.Close(); err != nil {
		return ctlerrors.NewFilesystemError("write_manifest", manifestRel, err)
	}

	componentsRel := b.registry.relComponentsFile()
	componentsAbs := b.registry.prefix.AbsPath(componentsRel)
	// ModifyFile moves the current list into the scratch area, so read it
	// first and write it back ahead of the new name.
	existing, err := os.ReadFile(componentsAbs)
	if err != nil && !os.IsNotExist(err) {
		return ctlerrors.NewFilesystemError("append_components", componentsAbs, err)
	}
	if err := b.tx.ModifyFile(componentsRel); err != nil {
		return err
	}
	cf, err := os.OpenFile(componentsAbs, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return ctlerrors.NewFilesystemError("append_components", componentsAbs, err)
	}
	if _, err := cf.Write(existing); err != nil {
		cf.Close()
		return ctlerrors.NewFilesystemError("append_components", componentsAbs, err)
	}
	if _, err := fmt.Fprintln(cf, b.name); err != nil {
		cf.Close()
		return ctlerrors.NewFilesystemError("append_components", componentsAbs, err)
	}
	if err := cf.Close(); err != nil {
		return ctlerrors.NewFilesystemError("append_components", componentsAbs, err)
	}

	return b.registry.writeVersion(b.tx)
}
