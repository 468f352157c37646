// Package launcher hands the rewritten arguments over to the editor by
// replacing the current process image.
package launcher

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// Launcher replaces the current process with the editor.
type Launcher struct {
	lookPath func(file string) (string, error)
	exec     func(argv0 string, argv []string, envv []string) error
}

// New creates a Launcher using PATH lookup and execve.
func New() *Launcher {
	return &Launcher{lookPath: exec.LookPath, exec: unix.Exec}
}

// Exec looks up args[0] on PATH and execs it with args and env. It only
// returns on failure.
func (l *Launcher) Exec(args []string, env []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	path, err := l.lookPath(args[0])
	if err != nil {
		return &LaunchError{Command: args[0], Cause: err}
	}

	if err := l.exec(path, args, env); err != nil {
		return &LaunchError{Command: args[0], Cause: err}
	}
	return nil
}

// Trace writes each argument quoted and space-separated, then a newline.
func Trace(w io.Writer, args []string) {
	var b strings.Builder
	for _, a := range args {
		fmt.Fprintf(&b, "%q ", a)
	}
	b.WriteString("\n")
	_, _ = io.WriteString(w, b.String())
}
