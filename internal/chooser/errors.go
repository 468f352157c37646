package chooser

import (
	"errors"
	"fmt"
)

// ProgramError wraps a failure of the terminal program itself.
type ProgramError struct {
	Cause error
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("terminal chooser failed: %v", e.Cause)
}
func (e *ProgramError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrCancelled  = errors.New("selection cancelled")
	ErrNoTerminal = errors.New("not a terminal")
	ErrNoItems    = errors.New("nothing to choose from")
)
