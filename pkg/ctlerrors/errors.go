// Package ctlerrors defines the structured error kinds of the component
// installation transaction layer, each layered on the generic
// ApplicationError machinery of pkg/errors.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package ctlerrors

import (
	"fmt"
	"strings"

	baseerrors "toolchainctl/pkg/errors"
)

// ⭐ CORE-007: Error kind taxonomy - 🔍 Status codes by kind

// Status codes returned to the host program, one per error kind, numbered
// in the order the kinds are declared below.
const (
	StatusUnsupportedVersion = 10
	StatusCorruptComponent   = 11
	StatusFilesystem         = 12
	StatusPrecondition       = 13
	StatusRollbackFailure    = 14
)

// UnsupportedInstallerVersionError is returned by Registry.Open when the
// on-disk version marker disagrees with the version this implementation
// supports. It is fatal and non-recoverable at this layer.
type UnsupportedInstallerVersionError struct {
	*baseerrors.ApplicationError
	Found    string
	Expected string
}

// NewUnsupportedInstallerVersion builds the error for a version mismatch.
func NewUnsupportedInstallerVersion(found, expected string) *UnsupportedInstallerVersionError {
	msg := fmt.Sprintf("unsupported installer-format version: found %q, expected %q", found, expected)
	return &UnsupportedInstallerVersionError{
		ApplicationError: baseerrors.NewApplicationErrorWithContext(
			msg, StatusUnsupportedVersion, "registry_open", "", nil,
		),
		Found:    found,
		Expected: expected,
	}
}

// CorruptComponentError is returned when a manifest line cannot be decoded,
// or when one of its parts has an unknown kind during uninstall.
type CorruptComponentError struct {
	*baseerrors.ApplicationError
	Name string
}

// NewCorruptComponent builds the error for a component named name.
func NewCorruptComponent(name string) *CorruptComponentError {
	msg := fmt.Sprintf("component %q is corrupt", name)
	return &CorruptComponentError{
		ApplicationError: baseerrors.NewApplicationErrorWithContext(
			msg, StatusCorruptComponent, "component_parts", name, nil,
		),
		Name: name,
	}
}

// FilesystemError wraps an underlying syscall failure with the operation and
// path it occurred against, classified by root cause via pkg/errors.
type FilesystemError struct {
	*baseerrors.ApplicationError
	Op   string
	Path string
}

// NewFilesystemError builds a FilesystemError for the given operation, path
// and underlying cause.
func NewFilesystemError(op, path string, cause error) *FilesystemError {
	msg := fmt.Sprintf("%s failed for %q", op, path)
	switch {
	case baseerrors.IsDiskFullError(cause):
		msg = fmt.Sprintf("%s failed for %q: disk full", op, path)
	case baseerrors.IsPermissionError(cause):
		msg = fmt.Sprintf("%s failed for %q: permission denied", op, path)
	}
	return &FilesystemError{
		ApplicationError: baseerrors.NewApplicationErrorWithContext(
			msg, StatusFilesystem, op, path, cause,
		),
		Op:   op,
		Path: path,
	}
}

// Category classifies the underlying cause (disk space, permission,
// missing path, network, ...) via the generic error classifier.
func (e *FilesystemError) Category() baseerrors.ErrorCategory {
	return baseerrors.NewDefaultErrorClassifier().ClassifyError(e.Err)
}

// Recoverable reports whether the underlying cause is one a caller might
// reasonably retry (e.g. disk space freed up) rather than one requiring
// manual intervention.
func (e *FilesystemError) Recoverable() bool {
	return baseerrors.NewDefaultErrorClassifier().IsRecoverable(e.Err)
}

// PreconditionViolatedError is returned when a verb's precondition does not
// hold, e.g. copy_file targeting a path that already exists.
type PreconditionViolatedError struct {
	*baseerrors.ApplicationError
	Op   string
	Path string
}

// NewPreconditionViolated builds a PreconditionViolatedError.
func NewPreconditionViolated(op, path string) *PreconditionViolatedError {
	msg := fmt.Sprintf("precondition violated for %s at %q", op, path)
	return &PreconditionViolatedError{
		ApplicationError: baseerrors.NewApplicationErrorWithContext(
			msg, StatusPrecondition, op, path, nil,
		),
		Op:   op,
		Path: path,
	}
}

// RollbackFailureError is raised when rollback itself partially fails. It
// carries the error that triggered the rollback plus every secondary error
// encountered while reversing change-log entries.
type RollbackFailureError struct {
	*baseerrors.ApplicationError
	Original  error
	Secondary []error
}

// NewRollbackFailure builds a RollbackFailureError.
func NewRollbackFailure(original error, secondary []error) *RollbackFailureError {
	parts := make([]string, 0, len(secondary))
	for _, e := range secondary {
		parts = append(parts, e.Error())
	}
	msg := fmt.Sprintf("rollback failed after %v", original)
	if len(parts) > 0 {
		msg = fmt.Sprintf("%s (additionally: %s)", msg, strings.Join(parts, "; "))
	}
	return &RollbackFailureError{
		ApplicationError: baseerrors.NewApplicationErrorWithContext(
			msg, StatusRollbackFailure, "rollback", "", original,
		),
		Original:  original,
		Secondary: secondary,
	}
}
