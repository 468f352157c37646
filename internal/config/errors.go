package config

import "fmt"

// LoadError is returned when the config file exists but cannot be used.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config %s: %v", e.Path, e.Cause)
}
func (e *LoadError) Unwrap() error { return e.Cause }
