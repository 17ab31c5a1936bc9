package component

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// ⭐ CORE-001: Reserved path guarding - 🛡️ Builder-side precondition

// ReservedPatterns are glob patterns (doublestar syntax, "/" separated) that
// no component may ever install a part under. The metadata directory itself
// is always reserved so a malformed or malicious component package cannot
// shadow the registry's own bookkeeping files.
var ReservedPatterns = []string{
	"lib/rustlib/**",
	"lib/rustlib",
}

// IsReserved reports whether relPath (host-separated, relative to the
// install prefix) matches one of ReservedPatterns. Builders call this before
// recording a part; a match is a PreconditionViolated error at the call site.
func IsReserved(relPath string, extra ...string) bool {
	normalized := filepath.ToSlash(relPath)
	normalized = strings.TrimPrefix(normalized, "./")
	for _, pattern := range append(append([]string{}, ReservedPatterns...), extra...) {
		if ok, _ := doublestar.Match(pattern, normalized); ok {
			return true
		}
		if normalized == strings.TrimSuffix(pattern, "/**") {
			return true
		}
	}
	return false
}
