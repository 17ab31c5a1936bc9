// Path validation and directory-creation helpers that classify the
// underlying os error (disk full, permission denied, missing path) into an
// ApplicationError with an appropriate status code, instead of returning
// the raw syscall error up the stack.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package errors

import (
	"context"
	"os"
)

// ⭐ EXTRACT-002: Path validation utilities - 🔍 Directory accessibility check

// ValidateDirectoryPath validates that path points to an accessible directory.
func ValidateDirectoryPath(path string) error {
	if path == "" {
		return NewApplicationError("directory path cannot be empty", 1)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewApplicationErrorWithCause("directory does not exist: "+path, 20, err)
		}
		if IsPermissionError(err) {
			return NewApplicationErrorWithCause("permission denied accessing directory: "+path, 22, err)
		}
		return NewApplicationErrorWithCause("cannot access directory: "+path, 1, err)
	}

	if !info.IsDir() {
		return NewApplicationError("path is not a directory: "+path, 21)
	}

	return nil
}

// ⭐ EXTRACT-002: Path validation utilities - 🔍 File accessibility check

// ValidateFilePath validates that path points to an accessible file.
func ValidateFilePath(path string) error {
	if path == "" {
		return NewApplicationError("file path cannot be empty", 1)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewApplicationErrorWithCause("file does not exist: "+path, 20, err)
		}
		if IsPermissionError(err) {
			return NewApplicationErrorWithCause("permission denied accessing file: "+path, 22, err)
		}
		return NewApplicationErrorWithCause("cannot access file: "+path, 1, err)
	}

	if info.IsDir() {
		return NewApplicationError("path is a directory, not a file: "+path, 21)
	}

	return nil
}

// ⭐ EXTRACT-002: Safe filesystem operations - 🔧 Classified directory creation

// SafeMkdirAll creates directories, classifying a failure into an
// ApplicationError carrying a status code specific to disk-full, permission,
// or generic creation failure.
func SafeMkdirAll(path string, perm os.FileMode) error {
	return SafeMkdirAllWithContext(context.Background(), path, perm)
}

// SafeMkdirAllWithContext is SafeMkdirAll with a cancellation check before
// touching the filesystem.
func SafeMkdirAllWithContext(ctx context.Context, path string, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(path, perm); err != nil {
		switch {
		case IsDiskFullError(err):
			return NewApplicationErrorWithContext(
				"insufficient disk space to create directory", 30, "directory_creation", path, err)
		case IsPermissionError(err):
			return NewApplicationErrorWithContext(
				"permission denied creating directory", 22, "directory_creation", path, err)
		default:
			return NewApplicationErrorWithContext(
				"failed to create directory", 31, "directory_creation", path, err)
		}
	}

	return nil
}
