package chooser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("63")

	promptStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// render draws the prompt, the items with the cursor highlighted, and a help line.
func render(prompt string, items []string, cursor int) string {
	if len(items) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, promptStyle.Render(prompt))
	lines = append(lines, "")

	for i, item := range items {
		if i == cursor {
			lines = append(lines, selectedStyle.Render(fmt.Sprintf("▸ %s", item)))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", item))
		}
	}

	lines = append(lines, "")
	lines = append(lines, helpStyle.Render("↑/↓: Navigate  Enter: Select  Esc: Cancel"))

	return strings.Join(lines, "\n") + "\n"
}
