// Package fsutil provides the filesystem used by path search and config
// discovery. It is backed by go-billy so the same code runs against the real
// OS and against an in-memory tree in tests.
package fsutil

import (
	"io"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// FileSystem implements the read-only operations needed by the rewriter.
// All paths are absolute.
type FileSystem struct {
	fs billy.Filesystem
}

// NewOSFileSystem creates a FileSystem rooted at the OS root.
func NewOSFileSystem() *FileSystem {
	return &FileSystem{fs: osfs.New("/")}
}

// New wraps an existing billy filesystem, such as a memfs tree in tests.
func New(fs billy.Filesystem) *FileSystem {
	return &FileSystem{fs: fs}
}

// IsDir reports whether path exists and is a directory.
func (f *FileSystem) IsDir(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func (f *FileSystem) IsFile(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads the whole file.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}
	return content, nil
}

// ListDir lists the names of the entries in a directory, sorted by name.
func (f *FileSystem) ListDir(path string) ([]string, error) {
	infos, err := f.fs.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names, nil
}
