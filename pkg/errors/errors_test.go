// Tests for the pkg/errors package to validate extracted error handling functionality.
// These tests ensure the extracted error handling components work correctly
// and maintain backward compatibility with the original functionality.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package errors

import (
	"errors"
	"strings"
	"testing"
)

// ⭐ EXTRACT-002: Error interface testing - 🧪 ApplicationError functionality
func TestApplicationError(t *testing.T) {
	// Test basic error creation
	err := NewApplicationError("test error", 42)
	if err.Error() != "test error" {
		t.Errorf("Expected 'test error', got '%s'", err.Error())
	}
	if err.GetStatusCode() != 42 {
		t.Errorf("Expected status code 42, got %d", err.GetStatusCode())
	}

	// Test error with cause
	cause := errors.New("underlying error")
	errWithCause := NewApplicationErrorWithCause("wrapper error", 43, cause)
	if !strings.Contains(errWithCause.Error(), "wrapper error") {
		t.Errorf("Error message should contain wrapper error")
	}
	if !strings.Contains(errWithCause.Error(), "underlying error") {
		t.Errorf("Error message should contain underlying error")
	}
	if errWithCause.Unwrap() != cause {
		t.Errorf("Unwrap should return the original cause")
	}

	// Test error with full context
	contextErr := NewApplicationErrorWithContext("context error", 44, "test_operation", "/test/path", cause)
	if contextErr.GetOperation() != "test_operation" {
		t.Errorf("Expected operation 'test_operation', got '%s'", contextErr.GetOperation())
	}
	if contextErr.GetPath() != "/test/path" {
		t.Errorf("Expected path '/test/path', got '%s'", contextErr.GetPath())
	}
}

// ⭐ EXTRACT-002: Error classification testing - 🧪 Error detection functions
func TestErrorClassification(t *testing.T) {
	// Test disk full error detection
	diskFullErrors := []error{
		errors.New("no space left on device"),
		errors.New("disk full"),
		errors.New("insufficient disk space"),
		errors.New("quota exceeded"),
	}
	for _, err := range diskFullErrors {
		if !IsDiskFullError(err) {
			t.Errorf("Should detect disk full error: %s", err.Error())
		}
	}

	// Test permission error detection
	permissionErrors := []error{
		errors.New("permission denied"),
		errors.New("access denied"),
		errors.New("operation not permitted"),
		errors.New("insufficient privileges"),
	}
	for _, err := range permissionErrors {
		if !IsPermissionError(err) {
			t.Errorf("Should detect permission error: %s", err.Error())
		}
	}

	// Test directory not found error detection
	notFoundErrors := []error{
		errors.New("no such file or directory"),
		errors.New("directory not found"),
		errors.New("path does not exist"),
	}
	for _, err := range notFoundErrors {
		if !IsDirectoryNotFoundError(err) {
			t.Errorf("Should detect directory not found error: %s", err.Error())
		}
	}

	// Test that normal errors are not incorrectly classified
	normalErr := errors.New("some other error")
	if IsDiskFullError(normalErr) || IsPermissionError(normalErr) || IsDirectoryNotFoundError(normalErr) {
		t.Errorf("Normal error should not be classified as special error type")
	}
}

// ⭐ EXTRACT-002: Error classification framework testing - 🧪 Classifier functionality
func TestDefaultErrorClassifier(t *testing.T) {
	classifier := NewDefaultErrorClassifier()

	// Test disk space error classification
	diskErr := errors.New("no space left on device")
	if classifier.ClassifyError(diskErr) != ErrorCategoryDiskSpace {
		t.Errorf("Should classify disk space error correctly")
	}
	if classifier.GetSeverity(diskErr) != ErrorSeverityCritical {
		t.Errorf("Disk space errors should be critical severity")
	}
	if !classifier.IsRecoverable(diskErr) {
		t.Errorf("Disk space errors should be recoverable")
	}

	// Test permission error classification
	permErr := errors.New("permission denied")
	if classifier.ClassifyError(permErr) != ErrorCategoryPermission {
		t.Errorf("Should classify permission error correctly")
	}
	if classifier.GetSeverity(permErr) != ErrorSeverityError {
		t.Errorf("Permission errors should be error severity")
	}
	if classifier.IsRecoverable(permErr) {
		t.Errorf("Permission errors should not be recoverable")
	}

	// Test unknown error classification
	unknownErr := errors.New("some unknown error")
	if classifier.ClassifyError(unknownErr) != ErrorCategoryUnknown {
		t.Errorf("Should classify unknown error correctly")
	}
}

// ⭐ EXTRACT-002: Path validation testing - 🧪 Validation functions
func TestPathValidation(t *testing.T) {
	// Test empty path validation
	err := ValidateDirectoryPath("")
	if err == nil {
		t.Errorf("Empty directory path should return error")
	}

	err = ValidateFilePath("")
	if err == nil {
		t.Errorf("Empty file path should return error")
	}

	// Test nonexistent path validation
	err = ValidateDirectoryPath("/nonexistent/path")
	if err == nil {
		t.Errorf("Nonexistent directory path should return error")
	}

	err = ValidateFilePath("/nonexistent/file")
	if err == nil {
		t.Errorf("Nonexistent file path should return error")
	}
}

// ⭐ EXTRACT-002: Safe mkdir testing - 🧪 Classified directory creation
func TestSafeMkdirAll(t *testing.T) {
	dir := t.TempDir() + "/nested/child"
	if err := SafeMkdirAll(dir, 0o755); err != nil {
		t.Fatalf("SafeMkdirAll should succeed for a writable path: %v", err)
	}
	if err := ValidateDirectoryPath(dir); err != nil {
		t.Errorf("directory created by SafeMkdirAll should validate: %v", err)
	}
}
