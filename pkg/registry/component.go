package registry

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	cpt "toolchainctl/pkg/component"
	"toolchainctl/pkg/ctlerrors"
	"toolchainctl/pkg/prune"
	"toolchainctl/pkg/txn"
)

// ⭐ CORE-004: Installed component handle - 📝 Manifest read + uninstall

// Component is one entry in the components list: a name plus the parts
// recorded in its manifest file.
type Component struct {
	registry *Registry
	Name     string
}

func (c *Component) manifestNameRel() string {
	return c.registry.relComponentManifest(c.Name)
}

// Parts reads and decodes the component's manifest file.
func (c *Component) Parts() ([]cpt.Part, error) {
	path := c.registry.prefix.AbsPath(c.manifestNameRel())
	f, err := os.Open(path)
	if err != nil {
		return nil, ctlerrors.NewFilesystemError("read_manifest", path, err)
	}
	defer f.Close()

	var parts []cpt.Part
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		part, ok := cpt.Decode(line)
		if !ok {
			return nil, ctlerrors.NewCorruptComponent(c.Name)
		}
		parts = append(parts, part)
	}
	if err := scanner.Err(); err != nil {
		return nil, ctlerrors.NewFilesystemError("read_manifest", path, err)
	}
	return parts, nil
}

// Uninstall removes the component's "components" list entry, then removes
// every part of the component in reverse installation order, prunes
// directories left empty by doing so, and finally removes the component's
// own manifest file. Every step is performed through tx, so a failure anywhere
// leaves the whole operation reversible by the caller.
func (c *Component) Uninstall(tx *txn.Transaction) error {
	if err := c.removeFromComponentsList(tx); err != nil {
		return err
	}

	parts, err := c.Parts()
	if err != nil {
		return err
	}

	pset := prune.NewSet()
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]
		switch {
		case part.Kind.IsFile():
			if err := tx.RemoveFile(c.Name, part.Path); err != nil {
				return err
			}
		case part.Kind.IsDir():
			if err := tx.RemoveDir(c.Name, part.Path); err != nil {
				return err
			}
		default:
			return ctlerrors.NewCorruptComponent(c.Name)
		}
		pset.Seen(part.Path)
	}

	root := c.registry.prefix.Root()
	isEmpty := func(relDir string) bool {
		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(relDir)))
		if err != nil {
			return false
		}
		return len(entries) == 0
	}
	it := pset.Iterator(isEmpty)
	for {
		dir, ok := it.Next()
		if !ok {
			break
		}
		if err := tx.RemoveDir(c.Name, filepath.FromSlash(dir)); err != nil {
			return err
		}
	}

	return tx.RemoveFile(c.Name, c.manifestNameRel())
}

// removeFromComponentsList rewrites the components file through the
// transaction's scratch area, filtering out this component's name, the way
// a staged rename replaces the original only once the filtered copy is
// complete.
func (c *Component) removeFromComponentsList(tx *txn.Transaction) error {
	rel := c.registry.relComponentsFile()
	abs := c.registry.prefix.AbsPath(rel)

	tmp, err := tx.Temp().NewFile()
	if err != nil {
		return ctlerrors.NewFilesystemError("stage_components", abs, err)
	}

	if err := filterLines(abs, tmp, c.Name); err != nil {
		return ctlerrors.NewFilesystemError("stage_components", abs, err)
	}

	if err := tx.ModifyFile(rel); err != nil {
		return err
	}
	if err := os.Rename(tmp, abs); err != nil {
		return ctlerrors.NewFilesystemError("commit_components", abs, err)
	}
	return nil
}

func filterLines(src, dst, exclude string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == exclude {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return w.Flush()
}
