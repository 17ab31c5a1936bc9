package prefix

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsPathJoinsUnderRoot(t *testing.T) {
	p := New("/opt/toolchain")
	assert.Equal(t, filepath.Join("/opt/toolchain", "bin", "rustc"), p.AbsPath(filepath.Join("bin", "rustc")))
}

func TestAbsPathRejectsEscapeAttempt(t *testing.T) {
	p := New("/opt/toolchain")
	got := p.AbsPath(filepath.Join("..", "..", "etc", "passwd"))
	assert.Equal(t, "/opt/toolchain", filepath.Dir(got+"/x")[:len("/opt/toolchain")])
	assert.NotContains(t, got, "..")
}

func TestAbsPathOfAbsoluteInputFallsBackToRoot(t *testing.T) {
	p := New("/opt/toolchain")
	assert.Equal(t, "/opt/toolchain", p.AbsPath("/etc/passwd"))
}

func TestManifestFileUnderMetadataRoot(t *testing.T) {
	p := New("/opt/toolchain")
	got := p.ManifestFile("components")
	assert.Equal(t, filepath.Join("/opt/toolchain", "lib", "rustlib", "components"), got)
}

func TestRelPathInvertsAbsPath(t *testing.T) {
	p := New("/opt/toolchain")
	abs := p.AbsPath(filepath.Join("bin", "rustc"))
	rel, err := p.RelPath(abs)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("bin", "rustc"), rel)
}
