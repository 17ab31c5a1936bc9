// Package txn implements the transactional discipline every mutation of an
// installed toolchain goes through: each verb performs one filesystem
// change and records exactly one change-log entry before returning: on
// commit the log is simply discarded; on rollback every entry is reversed
// in strict LIFO order.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package txn

import (
	"io"
	"os"
	"path/filepath"

	"toolchainctl/pkg/ctlerrors"
	"toolchainctl/pkg/notify"
	"toolchainctl/pkg/prefix"
)

// ⭐ CORE-003: Transaction lifecycle - 📝 State machine

type state int

const (
	stateOpen state = iota
	stateCommitted
	stateRolledBack
)

// Transaction is the stateful orchestrator described in the design: it
// performs filesystem mutations on behalf of a Registry/ComponentBuilder/
// ComponentUninstaller, and guarantees that everything it did is reversed
// if it is never committed.
type Transaction struct {
	prefix  prefix.Prefix
	scratch *ScratchArea
	sink    notify.Sink
	log     changeLog
	state   state
}

// New opens a transaction against p. sink may be nil, in which case
// notifications are discarded.
func New(p prefix.Prefix, sink notify.Sink) (*Transaction, error) {
	scratch, err := NewScratchArea(p)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = notify.NopSink
	}
	return &Transaction{prefix: p, scratch: scratch, sink: sink, state: stateOpen}, nil
}

// Prefix returns the install prefix this transaction operates against.
func (t *Transaction) Prefix() prefix.Prefix {
	return t.prefix
}

// Temp returns the transaction's scratch area, for callers that need a
// private scratch file before deciding which verb to call (e.g. the
// Component Uninstaller stages a rewritten "components" file here before
// calling ModifyFile).
func (t *Transaction) Temp() *ScratchArea {
	return t.scratch
}

func (t *Transaction) abs(rel string) string {
	return t.prefix.AbsPath(rel)
}

func fileExists(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && !info.IsDir()
}

func anyExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func dirExists(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

// ⭐ CORE-003: Transaction verbs - 🔧 One mutation + one log entry each

// AddFile creates an empty file at relpath and returns a writable handle to
// it. Precondition: no file already exists at relpath.
func (t *Transaction) AddFile(component, relpath string) (*os.File, error) {
	abs := t.abs(relpath)
	if anyExists(abs) {
		return nil, ctlerrors.NewPreconditionViolated("add_file", abs)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, ctlerrors.NewFilesystemError("add_file", abs, err)
	}
	f, err := os.Create(abs)
	if err != nil {
		return nil, ctlerrors.NewFilesystemError("add_file", abs, err)
	}
	t.sink.Notify(notify.Notification{Kind: notify.EventFileCreated, Component: component, Path: relpath})
	t.log.append(entry{kind: entryCreatedFile, component: component, relPath: relpath})
	return f, nil
}

// CopyFile copies src to relpath. Precondition: no file exists at relpath
// and src exists.
func (t *Transaction) CopyFile(component, relpath, src string) error {
	abs := t.abs(relpath)
	if anyExists(abs) {
		return ctlerrors.NewPreconditionViolated("copy_file", abs)
	}
	if !anyExists(src) {
		return ctlerrors.NewPreconditionViolated("copy_file", src)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return ctlerrors.NewFilesystemError("copy_file", abs, err)
	}
	if err := copyFilePreservingMode(src, abs); err != nil {
		return ctlerrors.NewFilesystemError("copy_file", abs, err)
	}
	size := int64(0)
	if info, err := os.Stat(abs); err == nil {
		size = info.Size()
	}
	t.sink.Notify(notify.Notification{Kind: notify.EventFileCopied, Component: component, Path: relpath, Size: size})
	t.log.append(entry{kind: entryCreatedFile, component: component, relPath: relpath})
	return nil
}

// CopyDir recursively copies src to relpath. Precondition: nothing exists
// at relpath.
func (t *Transaction) CopyDir(component, relpath, src string) error {
	abs := t.abs(relpath)
	if anyExists(abs) {
		return ctlerrors.NewPreconditionViolated("copy_dir", abs)
	}
	if err := copyDir(src, abs); err != nil {
		return ctlerrors.NewFilesystemError("copy_dir", abs, err)
	}
	t.sink.Notify(notify.Notification{Kind: notify.EventDirCreated, Component: component, Path: relpath})
	t.log.append(entry{kind: entryCreatedDir, component: component, relPath: relpath})
	return nil
}

// MoveFile renames src to relpath, falling back to copy+remove across
// devices. Precondition: no file exists at relpath and src exists.
func (t *Transaction) MoveFile(component, relpath, src string) error {
	abs := t.abs(relpath)
	if anyExists(abs) {
		return ctlerrors.NewPreconditionViolated("move_file", abs)
	}
	if !anyExists(src) {
		return ctlerrors.NewPreconditionViolated("move_file", src)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return ctlerrors.NewFilesystemError("move_file", abs, err)
	}
	if err := renameOrCopy(src, abs, false); err != nil {
		return ctlerrors.NewFilesystemError("move_file", abs, err)
	}
	t.sink.Notify(notify.Notification{Kind: notify.EventFileCreated, Component: component, Path: relpath})
	t.log.append(entry{kind: entryCreatedFile, component: component, relPath: relpath})
	return nil
}

// MoveDir renames src to relpath, falling back to recursive copy+remove
// across devices. Precondition: nothing exists at relpath.
func (t *Transaction) MoveDir(component, relpath, src string) error {
	abs := t.abs(relpath)
	if anyExists(abs) {
		return ctlerrors.NewPreconditionViolated("move_dir", abs)
	}
	if err := renameOrCopy(src, abs, true); err != nil {
		return ctlerrors.NewFilesystemError("move_dir", abs, err)
	}
	t.sink.Notify(notify.Notification{Kind: notify.EventDirCreated, Component: component, Path: relpath})
	t.log.append(entry{kind: entryCreatedDir, component: component, relPath: relpath})
	return nil
}

// ModifyFile backs up relpath's current content, if any, into the scratch
// area. It does not itself write new content: the caller overwrites relpath
// afterward. Legal whether or not relpath currently exists.
func (t *Transaction) ModifyFile(relpath string) error {
	abs := t.abs(relpath)
	if !fileExists(abs) {
		t.log.append(entry{kind: entryModifiedFile, relPath: relpath, hadBackup: false})
		return nil
	}
	backup, err := t.scratch.BackupFile(abs)
	if err != nil {
		return ctlerrors.NewFilesystemError("modify_file", abs, err)
	}
	t.sink.Notify(notify.Notification{Kind: notify.EventBackupCreated, Path: relpath, Detail: "pre-modify"})
	t.log.append(entry{kind: entryModifiedFile, relPath: relpath, backup: backup, hadBackup: true})
	return nil
}

// RemoveFile moves relpath into the scratch area as a backup, removing it
// from the install prefix. Precondition: the file exists.
func (t *Transaction) RemoveFile(component, relpath string) error {
	abs := t.abs(relpath)
	if !fileExists(abs) {
		return ctlerrors.NewPreconditionViolated("remove_file", abs)
	}
	backup, err := t.scratch.BackupFile(abs)
	if err != nil {
		return ctlerrors.NewFilesystemError("remove_file", abs, err)
	}
	t.sink.Notify(notify.Notification{Kind: notify.EventFileRemoved, Component: component, Path: relpath})
	t.log.append(entry{kind: entryRemovedFile, component: component, relPath: relpath, backup: backup})
	return nil
}

// RemoveDir moves the directory at relpath into the scratch area as a
// backup. Precondition: the directory exists.
func (t *Transaction) RemoveDir(component, relpath string) error {
	abs := t.abs(relpath)
	if !dirExists(abs) {
		return ctlerrors.NewPreconditionViolated("remove_dir", abs)
	}
	backup, err := t.scratch.BackupDir(abs)
	if err != nil {
		return ctlerrors.NewFilesystemError("remove_dir", abs, err)
	}
	t.sink.Notify(notify.Notification{Kind: notify.EventDirRemoved, Component: component, Path: relpath})
	t.log.append(entry{kind: entryRemovedDir, component: component, relPath: relpath, backup: backup})
	return nil
}

// ⭐ CORE-003: Commit / rollback - 📝 End-of-scope discipline

// Commit drains the change log, discards every backup held in the scratch
// area, and marks the transaction committed. Calling any verb afterward is
// a programmer error; Rollback or Close afterward does nothing.
func (t *Transaction) Commit() error {
	if t.state != stateOpen {
		return ctlerrors.NewPreconditionViolated("commit", "")
	}
	t.log.drain()
	if err := t.scratch.Close(); err != nil {
		return ctlerrors.NewFilesystemError("commit", t.scratch.Dir(), err)
	}
	t.state = stateCommitted
	return nil
}

// Rollback reverses every change-log entry in strict LIFO order and empties
// the scratch area. It is idempotent: calling it again, or after Commit,
// does nothing.
func (t *Transaction) Rollback() error {
	return t.rollback(nil)
}

// Close ends the transaction if it is still open, rolling back. It is the
// ergonomic "scope guard" the design calls for: `defer txn.Close()` right
// after New is safe whether or not Commit is reached, because Close after
// Commit is a no-op.
func (t *Transaction) Close() error {
	if t.state != stateOpen {
		return nil
	}
	return t.Rollback()
}

// rollback is Rollback's implementation; cause, if non-nil, is the error
// that triggered the rollback and is folded into a RollbackFailureError
// alongside any secondary reversal failures.
func (t *Transaction) rollback(cause error) error {
	if t.state != stateOpen {
		return nil
	}
	t.state = stateRolledBack
	t.sink.Notify(notify.Notification{Kind: notify.EventRollbackStarted, Detail: "reversing change log"})

	var secondary []error
	for _, e := range t.log.reversed() {
		if err := t.reverseEntry(e); err != nil {
			secondary = append(secondary, err)
			t.sink.Notify(notify.Notification{Kind: notify.EventRollbackFailed, Path: e.relPath, Detail: err.Error()})
		}
	}
	_ = t.scratch.Close()

	if len(secondary) > 0 {
		return ctlerrors.NewRollbackFailure(cause, secondary)
	}
	if cause != nil {
		return cause
	}
	return nil
}

// RollbackFailingVerb is the pattern callers use for a verb they invoke
// directly against an open transaction they intend to abort on failure: it
// rolls back and returns a RollbackFailureError wrapping verbErr plus any
// secondary reversal failures, or verbErr unchanged if reversal succeeded
// cleanly.
func (t *Transaction) RollbackFailingVerb(verbErr error) error {
	return t.rollback(verbErr)
}

func (t *Transaction) reverseEntry(e entry) error {
	abs := t.abs(e.relPath)
	switch e.kind {
	case entryCreatedFile:
		if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
			return ctlerrors.NewFilesystemError("rollback:remove_file", abs, err)
		}
		return nil
	case entryCreatedDir:
		if err := os.RemoveAll(abs); err != nil && !os.IsNotExist(err) {
			return ctlerrors.NewFilesystemError("rollback:remove_dir", abs, err)
		}
		return nil
	case entryModifiedFile:
		if !e.hadBackup {
			if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
				return ctlerrors.NewFilesystemError("rollback:undo_modify", abs, err)
			}
			return nil
		}
		if err := restoreBackup(e.backup, abs, false); err != nil {
			return ctlerrors.NewFilesystemError("rollback:restore_modify", abs, err)
		}
		t.scratch.Forget(e.backup, false)
		return nil
	case entryRemovedFile:
		if err := restoreBackup(e.backup, abs, false); err != nil {
			return ctlerrors.NewFilesystemError("rollback:restore_file", abs, err)
		}
		t.scratch.Forget(e.backup, false)
		return nil
	case entryRemovedDir:
		if err := restoreBackup(e.backup, abs, true); err != nil {
			return ctlerrors.NewFilesystemError("rollback:restore_dir", abs, err)
		}
		t.scratch.Forget(e.backup, true)
		return nil
	default:
		return nil
	}
}

func restoreBackup(backup, dest string, isDir bool) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return renameOrCopy(backup, dest, isDir)
}

func copyFilePreservingMode(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return nil
}
