package devcontainer

import (
	"github.com/Cyclone1070/cope/internal/pathutil"
)

// FileSystem defines the filesystem operations needed for discovery.
type FileSystem interface {
	IsDir(path string) bool
	IsFile(path string) bool
	ListDir(path string) ([]string, error)
	ReadFile(path string) ([]byte, error)
}

// Discover parses every ConfigFile found in markerDir and in its immediate
// subdirectories. A missing marker directory yields no records. Read and
// parse failures are returned; they are never skipped.
func Discover(fs FileSystem, markerDir string) ([]Record, error) {
	paths, err := configPaths(fs, markerDir)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(p)
		if err != nil {
			return nil, &ReadError{Path: p, Cause: err}
		}
		rec, err := Parse(p, data)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// configPaths searches markerDir and each subdirectory (one level only).
func configPaths(fs FileSystem, markerDir string) ([]string, error) {
	if !fs.IsDir(markerDir) {
		return nil, nil
	}

	names, err := fs.ListDir(markerDir)
	if err != nil {
		return nil, &ReadError{Path: markerDir, Cause: err}
	}

	dirs := []string{markerDir}
	for _, name := range names {
		sub := pathutil.Join(markerDir, name)
		if fs.IsDir(sub) {
			dirs = append(dirs, sub)
		}
	}

	var paths []string
	for _, d := range dirs {
		candidate := pathutil.Join(d, ConfigFile)
		if fs.IsFile(candidate) {
			paths = append(paths, candidate)
		}
	}
	return paths, nil
}
