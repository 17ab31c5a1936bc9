package txn

import (
	"io"
	"os"
	"path/filepath"

	"toolchainctl/pkg/fileops"
)

// ⭐ CORE-003: Recursive directory copy - 🔧 Used by copy_dir/move_dir(cross-device)

// vcsExclusions lists the directories copy_dir leaves behind when staging a
// component tree: a component's own version-control metadata never belongs
// under the installed prefix.
var vcsExclusions = []string{".git", ".hg", ".svn"}

// copyDir recursively copies the tree rooted at src to dst, preserving
// directory structure but skipping any of vcsExclusions. It is used both by
// the copy_dir verb and as the cross-device fallback for move_dir.
func copyDir(src, dst string) error {
	traverser := fileops.NewTraverserWithExclusions(vcsExclusions)
	return traverser.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm()|0o700)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		}
		return fileops.AtomicCopy(path, target)
	})
}

// copyFilePlain copies a single file's bytes without the atomic-rename
// dance; used only as renameOrCopy's fallback for a single file (backups,
// restores and MoveFile) when a rename fails, e.g. across devices.
func copyFilePlain(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
