package tui

import "github.com/charmbracelet/lipgloss"

// chromeHeight is the number of rows used by the header and footer.
const chromeHeight = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
