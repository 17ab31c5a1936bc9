// Package resources tracks temporary files and directories created while
// staging a transaction so they get cleaned up even if the operation that
// created them fails partway through.
//
// Copyright (c) 2024 toolchainctl Contributors
// Licensed under the MIT License
package resources

import (
	"fmt"
	"os"
	"sync"
)

// ⭐ EXTRACT-002: Resource interface and implementations - 🔍 Core resource contract
// Resource represents any resource that can be cleaned up
type Resource interface {
	Cleanup() error
	String() string
}

// ⭐ EXTRACT-002: Resource interface and implementations - 🔧 Temporary file resource
// TempFile represents a temporary file that can be cleaned up
type TempFile struct {
	Path string
}

// Cleanup removes the temporary file from the filesystem
func (tf *TempFile) Cleanup() error {
	return os.Remove(tf.Path)
}

// String returns a string representation of the temporary file
func (tf *TempFile) String() string {
	return fmt.Sprintf("TempFile{Path: %s}", tf.Path)
}

// ⭐ EXTRACT-002: Resource interface and implementations - 🔧 Temporary directory resource
// TempDir represents a temporary directory that can be cleaned up
type TempDir struct {
	Path string
}

// Cleanup removes the temporary directory and all its contents from the filesystem
func (td *TempDir) Cleanup() error {
	return os.RemoveAll(td.Path)
}

// String returns a string representation of the temporary directory
func (td *TempDir) String() string {
	return fmt.Sprintf("TempDir{Path: %s}", td.Path)
}

// ⭐ EXTRACT-002: ResourceManager core - 🔧 Thread-safe resource tracking
// ResourceManager manages a collection of resources for automatic cleanup,
// holding the scratch files and directories a ScratchArea creates while
// staging a transaction verb.
type ResourceManager struct {
	resources []Resource
	mutex     sync.RWMutex
}

// NewResourceManager creates a new ResourceManager instance
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		resources: make([]Resource, 0),
	}
}

// AddResource adds a resource to be tracked for cleanup
func (rm *ResourceManager) AddResource(resource Resource) {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()
	rm.resources = append(rm.resources, resource)
}

// AddTempFile adds a temporary file to be tracked for cleanup
func (rm *ResourceManager) AddTempFile(path string) {
	rm.AddResource(&TempFile{Path: path})
}

// AddTempDir adds a temporary directory to be tracked for cleanup
func (rm *ResourceManager) AddTempDir(path string) {
	rm.AddResource(&TempDir{Path: path})
}

// RemoveResource removes a resource from tracking, typically after the
// operation that staged it committed successfully and the scratch copy no
// longer needs automatic cleanup.
func (rm *ResourceManager) RemoveResource(resource Resource) {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	for i, r := range rm.resources {
		if r.String() == resource.String() {
			rm.resources = append(rm.resources[:i], rm.resources[i+1:]...)
			break
		}
	}
}

// Cleanup cleans up all tracked resources, continuing past individual
// failures and returning the last one encountered.
func (rm *ResourceManager) Cleanup() error {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	var lastError error
	for _, resource := range rm.resources {
		if err := resource.Cleanup(); err != nil {
			lastError = err
		}
	}

	rm.resources = rm.resources[:0]
	return lastError
}
