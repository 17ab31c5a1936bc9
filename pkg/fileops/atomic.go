// Package fileops provides file operations and utilities for CLI applications.
//
// This file contains the atomic single-file copy primitive the transaction
// layer stages every regular file of a copied directory tree through: write
// to a sibling temp file,
// then rename over the destination, so a crash mid-copy never leaves a
// half-written file at the target path.
package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ⭐ EXTRACT-006: Atomic file operations extracted - 🔧

// atomicWriter stages writes to a temp file beside targetPath and only
// renames over targetPath on Commit.
type atomicWriter struct {
	targetPath string
	tempPath   string
	tempFile   *os.File
	done       bool
}

// newAtomicWriter creates a temp file beside targetPath to stage writes in.
func newAtomicWriter(targetPath string) (*atomicWriter, error) {
	if err := ValidatePath(targetPath); err != nil {
		return nil, fmt.Errorf("invalid target path: %v", err)
	}

	dir := filepath.Dir(targetPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create directory %s: %v", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(targetPath)+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("cannot create temporary file: %v", err)
	}

	return &atomicWriter{targetPath: targetPath, tempPath: tempFile.Name(), tempFile: tempFile}, nil
}

func (aw *atomicWriter) Write(data []byte) (int, error) {
	if aw.done {
		return 0, fmt.Errorf("writer is closed")
	}
	return aw.tempFile.Write(data)
}

// commit closes the temp file, applies perm, and renames it over targetPath.
func (aw *atomicWriter) commit(perm os.FileMode) error {
	if aw.done {
		return fmt.Errorf("writer already closed")
	}
	if err := aw.tempFile.Close(); err != nil {
		aw.abort()
		return fmt.Errorf("cannot close temporary file: %v", err)
	}
	if err := os.Chmod(aw.tempPath, perm); err != nil {
		aw.abort()
		return fmt.Errorf("cannot set permissions: %v", err)
	}
	if err := os.Rename(aw.tempPath, aw.targetPath); err != nil {
		aw.abort()
		return fmt.Errorf("cannot commit file: %v", err)
	}
	aw.done = true
	return nil
}

// abort discards the temp file without touching targetPath.
func (aw *atomicWriter) abort() error {
	if aw.done {
		return nil
	}
	aw.tempFile.Close()
	err := os.Remove(aw.tempPath)
	if err != nil && os.IsNotExist(err) {
		err = nil
	}
	aw.done = true
	return err
}

// AtomicCopy copies a file from src to dst through a temporary file in dst's
// directory, renamed into place only once the full contents and the
// source's permissions have been written.
func AtomicCopy(src, dst string) error {
	if err := ValidateReadable(src); err != nil {
		return fmt.Errorf("source file validation failed: %v", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open source file: %v", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("cannot get source file info: %v", err)
	}

	writer, err := newAtomicWriter(dst)
	if err != nil {
		return fmt.Errorf("cannot create atomic writer: %v", err)
	}

	if _, err := io.Copy(writer, srcFile); err != nil {
		writer.abort()
		return fmt.Errorf("copy failed: %v", err)
	}

	if err := writer.commit(srcInfo.Mode()); err != nil {
		return fmt.Errorf("cannot commit copy: %v", err)
	}
	return nil
}
