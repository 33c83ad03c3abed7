// Package tui is the interactive terminal preview of the page shell.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc lays the page out for a terminal of the given size.
type RenderFunc func(width, height int) string

// Model contains the Bubbletea state for the page preview.
type Model struct {
	title    string
	render   RenderFunc
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	renders  int
	quitting bool
}

// NewModel constructs a preview model. Nothing is rendered until the first
// window size message arrives.
func NewModel(title string, render RenderFunc) Model {
	return Model{
		title:    title,
		render:   render,
		keys:     defaultKeys(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Ready reports whether the model has received a window size.
func (m Model) Ready() bool {
	return m.ready
}

// Size returns the last known terminal size.
func (m Model) Size() (int, int) {
	return m.width, m.height
}

// Renders returns how many times the page has been laid out.
func (m Model) Renders() int {
	return m.renders
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Content returns the current page layout.
func (m Model) Content() string {
	return m.viewport.View()
}

func (m *Model) relayout() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chromeHeight, 1)
	if m.render != nil {
		m.viewport.SetContent(m.render(m.viewport.Width, m.viewport.Height))
		m.renders++
	}
}
