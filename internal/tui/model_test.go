package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizeRender(width, height int) string {
	return fmt.Sprintf("page %dx%d", width, height)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	out, ok := updated.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModelWaitsForWindowSize(t *testing.T) {
	t.Parallel()

	m := NewModel("Home", sizeRender)
	assert.Nil(t, m.Init())
	assert.False(t, m.Ready())
	assert.Equal(t, "loading…", m.View())
	assert.Zero(t, m.Renders())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Zero(t, m.Renders())
}

func TestWindowSizeRendersPage(t *testing.T) {
	t.Parallel()

	m := NewModel("Home", sizeRender)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	require.True(t, m.Ready())

	w, h := m.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
	assert.Equal(t, 1, m.Renders())
	assert.Contains(t, m.Content(), "page 100x28")

	view := m.View()
	assert.Contains(t, view, "pageshell • Home")
	assert.Contains(t, view, "page 100x28")
	assert.Contains(t, view, "quit")
}

func TestResizeRerenders(t *testing.T) {
	t.Parallel()

	m := NewModel("Home", sizeRender)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	assert.Equal(t, 2, m.Renders())
	assert.Contains(t, m.Content(), "page 60x18")
}

func TestReloadKeyRerenders(t *testing.T) {
	t.Parallel()

	m := NewModel("Home", sizeRender)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.Renders())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := NewModel("Home", sizeRender)
		m, cmd := update(t, m, msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Quitting())
		assert.Empty(t, m.View())
	}
}

func TestViewportScrolls(t *testing.T) {
	t.Parallel()

	tall := func(int, int) string {
		lines := make([]string, 50)
		for i := range lines {
			lines[i] = fmt.Sprintf("line %02d", i)
		}
		return strings.Join(lines, "\n")
	}

	m := NewModel("Home", tall)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	assert.Contains(t, m.Content(), "line 00")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.NotContains(t, m.Content(), "line 00")
	assert.Contains(t, m.Content(), "line 01")
}

func TestNilRenderFunc(t *testing.T) {
	t.Parallel()

	m := NewModel("Home", nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Zero(t, m.Renders())
	assert.True(t, m.Ready())
}
