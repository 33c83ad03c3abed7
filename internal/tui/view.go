package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading…"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(fmt.Sprintf("pageshell • %s", m.title)),
		statusStyle.Render(fmt.Sprintf("  %dx%d  %3.f%%", m.width, m.height, m.viewport.ScrollPercent()*100)),
	)
	footer := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}
