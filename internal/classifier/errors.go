package classifier

import (
	"errors"
	"fmt"
)

// EncodingError is returned for an argument that cannot be passed to exec.
type EncodingError struct {
	Arg string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("argument %q contains a NUL byte", e.Arg)
}

// WorkingDirError is returned when a relative path needs the working
// directory and it cannot be determined.
type WorkingDirError struct {
	Cause error
}

func (e *WorkingDirError) Error() string {
	return fmt.Sprintf("failed to get current directory: %v", e.Cause)
}

func (e *WorkingDirError) Unwrap() error {
	return e.Cause
}

// -- Sentinels --

var (
	ErrEmptyArgv = errors.New("empty argument vector")
	ErrNoGetwd   = errors.New("no working directory source configured")
)
