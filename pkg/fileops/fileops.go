// Package fileops provides the low-level file primitives the transaction
// layer and component staging build on:
//
//   - Path validation (validation.go) — rejects traversal/control-byte paths
//     before anything touches disk.
//   - Atomic single-file copy (atomic.go) — stage-then-rename so a crash
//     mid-copy never leaves a half-written file at the destination.
//   - Directory traversal with exclusions (traversal.go, exclusion.go) —
//     walk a tree depth-first while skipping a component's own
//     version-control directories.
package fileops

// ⭐ EXTRACT-006: File operations package interface - 📝

// Version information
const (
	// Version of the fileops package
	Version = "1.0.0"

	// PackageName for identification
	PackageName = "fileops"
)

// ⭐ EXTRACT-006: Package version and identification - 📝
