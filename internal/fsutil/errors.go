package fsutil

import "fmt"

// -- Errors --

type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }
