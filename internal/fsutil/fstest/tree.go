// Package fstest builds in-memory directory trees for tests.
package fstest

import (
	"testing"

	"github.com/Cyclone1070/cope/internal/fsutil"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// Tree is a memfs tree together with the FileSystem reading it.
type Tree struct {
	FS *fsutil.FileSystem

	t   testing.TB
	mem billy.Filesystem
}

// New creates an empty tree.
func New(t testing.TB) *Tree {
	mem := memfs.New()
	return &Tree{FS: fsutil.New(mem), t: t, mem: mem}
}

// Dir creates directories and their parents.
func (tr *Tree) Dir(paths ...string) *Tree {
	tr.t.Helper()
	for _, p := range paths {
		require.NoError(tr.t, tr.mem.MkdirAll(p, 0o755))
	}
	return tr
}

// File creates or overwrites a file, creating its parents.
func (tr *Tree) File(path, content string) *Tree {
	tr.t.Helper()
	require.NoError(tr.t, util.WriteFile(tr.mem, path, []byte(content), 0o644))
	return tr
}

// Files creates every file in the map.
func (tr *Tree) Files(files map[string]string) *Tree {
	tr.t.Helper()
	for path, content := range files {
		tr.File(path, content)
	}
	return tr
}
