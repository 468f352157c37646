// Package pathutil turns argument strings into absolute paths and walks
// their ancestors looking for marker directories.
package pathutil

import (
	"strings"
)

const separator = "/"

// Normalize resolves path against cwd into an absolute path with no "." or
// ".." components. ".." at the root is dropped so the result never escapes
// the root. The path is treated as raw bytes; it need not be valid UTF-8.
func Normalize(path, cwd string) string {
	abs := path
	if !IsAbs(path) {
		abs = cwd + separator + path
	}

	var kept []string
	for _, comp := range strings.Split(abs, separator) {
		switch comp {
		case "", ".":
			// skip
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, comp)
		}
	}

	return separator + strings.Join(kept, separator)
}

// IsAbs reports whether path starts at the root.
func IsAbs(path string) bool {
	return strings.HasPrefix(path, separator)
}

// Join appends elem to an absolute directory without cleaning it.
func Join(dir, elem string) string {
	if dir == separator {
		return separator + elem
	}
	return dir + separator + elem
}

// Parent returns the directory containing path. The second return value is
// false when path is the root and has no parent.
func Parent(path string) (string, bool) {
	if path == separator || path == "" {
		return path, false
	}
	idx := strings.LastIndex(path, separator)
	if idx <= 0 {
		return separator, true
	}
	return path[:idx], true
}

// Base returns the last component of path, or the root itself.
func Base(path string) string {
	if path == separator {
		return separator
	}
	return path[strings.LastIndex(path, separator)+1:]
}

// Rel returns target relative to root. Both must be normalized. The root
// itself yields "".
func Rel(root, target string) (string, error) {
	if target == root {
		return "", nil
	}
	prefix := root
	if root != separator {
		prefix = root + separator
	}
	if !strings.HasPrefix(target, prefix) {
		return "", &OutsideRootError{Root: root, Path: target}
	}
	return strings.TrimPrefix(target, prefix), nil
}
