package pathutil

// DirChecker is the filesystem capability the upward search needs.
type DirChecker interface {
	IsDir(path string) bool
}

// FindOptions configures FindDirUp.
type FindOptions struct {
	// Dir is the marker directory name to look for.
	Dir string
	// Stop aborts the search when a directory with this name is found first.
	// Empty disables the check.
	Stop string
	// FromParent starts the search at the parent of the given path.
	FromParent bool
}

// FindDirUp looks for opts.Dir starting at path and then in each parent
// directory. It returns the marker directory's path, or false when the
// ancestor chain is exhausted or a stop directory was found first.
func FindDirUp(fs DirChecker, path string, opts FindOptions) (string, bool) {
	current := path
	if opts.FromParent {
		parent, ok := Parent(path)
		if !ok {
			return "", false
		}
		current = parent
	}

	seen := make(map[string]struct{})
	for {
		// Prevent loops, including the root.
		if _, ok := seen[current]; ok {
			return "", false
		}
		seen[current] = struct{}{}

		marker := Join(current, opts.Dir)
		if fs.IsDir(marker) {
			return marker, true
		}

		// A stop directory before the marker means a different project boundary.
		if opts.Stop != "" && fs.IsDir(Join(current, opts.Stop)) {
			return "", false
		}

		parent, ok := Parent(current)
		if !ok {
			return "", false
		}
		current = parent
	}
}
