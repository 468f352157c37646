// Package chooser asks the user on the terminal which devcontainer
// configuration to open.
package chooser

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Terminal runs an interactive list on a terminal. The list is drawn on
// the error stream so standard output stays untouched.
type Terminal struct {
	in         *os.File
	out        *os.File
	isTerminal func(fd int) bool
}

// NewTerminal creates a chooser reading stdin and drawing on stderr.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stderr, isTerminal: term.IsTerminal}
}

// Choose shows labels under prompt and returns the selected index. The
// cursor starts on the first item.
func (t *Terminal) Choose(prompt string, labels []string) (int, error) {
	if len(labels) == 0 {
		return -1, ErrNoItems
	}
	if !t.isTerminal(int(t.in.Fd())) || !t.isTerminal(int(t.out.Fd())) {
		return -1, ErrNoTerminal
	}

	p := tea.NewProgram(newModel(prompt, labels), tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return -1, &ProgramError{Cause: err}
	}

	m, ok := final.(model)
	if !ok || !m.chosen {
		return -1, ErrCancelled
	}
	return m.cursor, nil
}
