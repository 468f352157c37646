package devcontainer

import (
	"errors"
	"fmt"
)

// -- Error Types --

// ReadError is returned when a marker directory or config file cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }

// ParseError is returned when a config file is not valid JSON with comments.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing JSON %s: %v", e.Path, e.Cause)
}
func (e *ParseError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrNotAnObject = errors.New("top-level value is not an object")
)
