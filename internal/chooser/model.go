package chooser

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

// model is the bubbletea model for a single-choice list.
type model struct {
	prompt    string
	items     []string
	cursor    int
	chosen    bool
	cancelled bool
}

func newModel(prompt string, items []string) model {
	return model{prompt: prompt, items: items}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Select):
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.chosen || m.cancelled {
		return ""
	}
	return render(m.prompt, m.items, m.cursor)
}
