package launcher

import (
	"errors"
	"fmt"
)

// LaunchError is returned when the editor cannot replace this process.
type LaunchError struct {
	Command string
	Cause   error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("exec failed launching %q: %v", e.Command, e.Cause)
}
func (e *LaunchError) Unwrap() error { return e.Cause }

var ErrNoCommand = errors.New("no command to launch")
