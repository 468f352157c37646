package resolver

import (
	"errors"
	"fmt"
)

// SelectionError is returned when the chooser cannot pick a configuration.
type SelectionError struct {
	Cause error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection failed: %v", e.Cause)
}
func (e *SelectionError) Unwrap() error { return e.Cause }

var ErrIndexOutOfRange = errors.New("chooser returned index out of range")
