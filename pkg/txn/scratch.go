package txn

import (
	"fmt"
	"os"
	"path/filepath"

	"toolchainctl/pkg/prefix"
	"toolchainctl/pkg/resources"
)

// ⭐ CORE-003: Scratch area - 🔧 Per-transaction backup arena

// ScratchArea is a temporary directory scoped to one transaction, holding
// backups of overwritten or removed files/directories and scratch files
// created for the transaction's own bookkeeping (e.g. the rewritten
// "components" file during an uninstall).
//
// It lives under the install prefix's own metadata directory rather than
// the host's generic temp directory so that moving a file into or out of it
// is a same-filesystem rename, not a cross-device copy. This is also why
// the metadata directory is excluded from the "filesystem unchanged after
// rollback" comparison: the scratch area itself is emptied, not restored.
type ScratchArea struct {
	dir       string
	resources *resources.ResourceManager
	seq       int
}

// NewScratchArea creates a fresh scratch directory under p's metadata root.
func NewScratchArea(p prefix.Prefix) (*ScratchArea, error) {
	metaDir := p.AbsPath(p.MetadataRootRel())
	if err := os.MkdirAll(metaDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create metadata directory %s: %w", metaDir, err)
	}
	dir, err := os.MkdirTemp(metaDir, "scratch-")
	if err != nil {
		return nil, fmt.Errorf("cannot create scratch area: %w", err)
	}
	return &ScratchArea{dir: dir, resources: resources.NewResourceManager()}, nil
}

// Dir returns the scratch area's own directory.
func (s *ScratchArea) Dir() string {
	return s.dir
}

func (s *ScratchArea) nextPath(prefix string) string {
	s.seq++
	return filepath.Join(s.dir, fmt.Sprintf("%s-%d", prefix, s.seq))
}

// NewFile reserves and creates a new, empty scratch file, returning its
// path. Ownership belongs to the scratch area until the transaction commits
// or rolls back.
func (s *ScratchArea) NewFile() (string, error) {
	p := s.nextPath("scratch")
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	f.Close()
	s.resources.AddTempFile(p)
	return p, nil
}

// BackupFile moves src into the scratch area and returns the backup's path.
func (s *ScratchArea) BackupFile(src string) (string, error) {
	dst := s.nextPath("backup")
	if err := renameOrCopy(src, dst, false); err != nil {
		return "", err
	}
	s.resources.AddTempFile(dst)
	return dst, nil
}

// BackupDir moves the directory tree rooted at src into the scratch area
// and returns the backup's path.
func (s *ScratchArea) BackupDir(src string) (string, error) {
	dst := s.nextPath("backup-dir")
	if err := renameOrCopy(src, dst, true); err != nil {
		return "", err
	}
	s.resources.AddTempDir(dst)
	return dst, nil
}

// Forget stops tracking path for cleanup, typically called once a backup
// has been moved back out of the scratch area during rollback.
func (s *ScratchArea) Forget(path string, isDir bool) {
	if isDir {
		s.resources.RemoveResource(&resources.TempDir{Path: path})
		return
	}
	s.resources.RemoveResource(&resources.TempFile{Path: path})
}

// Close deletes everything still tracked in the scratch area and removes
// the scratch directory itself. It is idempotent.
func (s *ScratchArea) Close() error {
	_ = s.resources.Cleanup()
	return os.RemoveAll(s.dir)
}

func renameOrCopy(src, dst string, isDir bool) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if isDir {
		if err := copyDir(src, dst); err != nil {
			return err
		}
		return os.RemoveAll(src)
	}
	if err := copyFilePlain(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}
