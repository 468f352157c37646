package pathutil

import "fmt"

// OutsideRootError is returned when a path is not below the expected root.
type OutsideRootError struct {
	Root string
	Path string
}

func (e *OutsideRootError) Error() string {
	return fmt.Sprintf("path %s is outside root %s", e.Path, e.Root)
}
