package prune

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenRegistersContainingDirectory(t *testing.T) {
	s := NewSet()
	s.Seen("share/doc/rust/html/index.html")
	assert.ElementsMatch(t, []string{"share/doc/rust/html"}, s.Candidates())
}

func TestSeenTopLevelFileYieldsNoCandidate(t *testing.T) {
	s := NewSet()
	s.Seen("README")
	assert.Empty(t, s.Candidates())
}

func TestSeenSkipsDirectoryAlreadyKnownAsAncestor(t *testing.T) {
	s := NewSet()
	s.Seen("share/doc/rust/html/a.html")
	// "share/doc/rust" is already an ancestor of the html candidate above,
	// so seeing a second part directly inside it must not add it as its
	// own candidate: the walk up from "html" will reach it anyway once
	// html itself turns out to be empty.
	s.Seen("share/doc/rust/b.txt")
	assert.ElementsMatch(t, []string{"share/doc/rust/html"}, s.Candidates())
}

func TestIteratorStopsAtNonEmptyDirectory(t *testing.T) {
	s := NewSet()
	s.Seen("share/doc/rust/html/index.html")

	empty := map[string]bool{
		"share/doc/rust/html": true,
		"share/doc/rust":      false, // still has other content
	}
	it := s.Iterator(func(rel string) bool { return empty[rel] })
	got := it.All()
	assert.Equal(t, []string{"share/doc/rust/html"}, got)
}

func TestIteratorWalksAllTheWayToRootWhenEverythingEmpties(t *testing.T) {
	s := NewSet()
	s.Seen("share/doc/rust/html/index.html")

	empty := map[string]bool{
		"share/doc/rust/html": true,
		"share/doc/rust":      true,
		"share/doc":           true,
		"share":               true,
	}
	it := s.Iterator(func(rel string) bool { return empty[rel] })
	got := it.All()
	assert.Equal(t, []string{
		"share/doc/rust/html",
		"share/doc/rust",
		"share/doc",
		"share",
	}, got)
}

func TestIteratorNeverYieldsDirectoryReportedNonEmpty(t *testing.T) {
	s := NewSet()
	s.Seen("a/b/c/file.txt")
	s.Seen("a/b/other.txt")

	reportedEmpty := map[string]bool{}
	it := s.Iterator(func(rel string) bool {
		v, ok := reportedEmpty[rel]
		return ok && v
	})
	reportedEmpty["a/b/c"] = true
	reportedEmpty["a/b"] = false

	for _, d := range it.All() {
		assert.True(t, reportedEmpty[d], "iterator yielded %q which was never reported empty", d)
	}
}

// TestIteratorAgainstRealFilesystem exercises the engine the way the
// registry will: seeding a real directory tree, removing files, and letting
// the iterator's callback consult os.ReadDir directly.
func TestIteratorAgainstRealFilesystem(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "share", "doc", "rust", "html")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	file := filepath.Join(nested, "index.html")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	s := NewSet()
	s.Seen("share/doc/rust/html/index.html")
	require.NoError(t, os.Remove(file))

	isEmpty := func(rel string) bool {
		entries, err := os.ReadDir(filepath.Join(root, rel))
		if err != nil {
			return false
		}
		return len(entries) == 0
	}

	it := s.Iterator(isEmpty)
	for {
		dir, ok := it.Next()
		if !ok {
			break
		}
		require.NoError(t, os.Remove(filepath.Join(root, dir)))
	}

	_, err := os.Stat(filepath.Join(root, "share"))
	assert.True(t, os.IsNotExist(err))
}

// property: Seen is order-independent in the candidate set it produces.
func TestSeenOrderIndependence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	pathGen := gen.OneConstOf(
		"share/doc/rust/html/a.html",
		"share/doc/rust/html/b.html",
		"share/doc/rust/c.txt",
		"bin/rustc",
		"lib/libstd.so",
		"share/man/man1/rustc.1",
	)

	properties.Property("candidate set is invariant under permutation of Seen calls", prop.ForAll(
		func(paths []string) bool {
			forward := NewSet()
			for _, p := range paths {
				forward.Seen(p)
			}
			reversed := NewSet()
			for i := len(paths) - 1; i >= 0; i-- {
				reversed.Seen(paths[i])
			}
			return sameSet(forward.Candidates(), reversed.Candidates())
		},
		gen.SliceOf(pathGen),
	))

	properties.TestingRun(t)
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	m := map[string]int{}
	for _, v := range a {
		m[v]++
	}
	for _, v := range b {
		m[v]--
	}
	for _, n := range m {
		if n != 0 {
			return false
		}
	}
	return true
}
