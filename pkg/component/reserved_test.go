package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReservedMatchesMetadataDirectory(t *testing.T) {
	assert.True(t, IsReserved("lib/rustlib"))
	assert.True(t, IsReserved("lib/rustlib/components"))
	assert.True(t, IsReserved("lib/rustlib/manifest-rustc"))
}

func TestIsReservedAllowsOrdinaryPaths(t *testing.T) {
	assert.False(t, IsReserved("bin/rustc"))
	assert.False(t, IsReserved("share/doc/rust/html/index.html"))
	assert.False(t, IsReserved("lib/rustlib-extra/file"))
}

func TestIsReservedHonorsExtraPatterns(t *testing.T) {
	assert.False(t, IsReserved("etc/custom.conf"))
	assert.True(t, IsReserved("etc/custom.conf", "etc/**"))
}
