package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const welcomeText = "Welcome to Stock Chat. Ask your advisor anything, or type /help."

var (
	accent      = lipgloss.Color("#7D56F4")
	muted       = lipgloss.Color("#7D7A85")
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	onlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	statusStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)

	composerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5E6472"))
	historyComposerStyle = composerStyle.BorderForeground(lipgloss.Color("#FFB454"))
)

func (m *Model) View() string {
	composer := composerStyle
	if m.state.HistoryMode {
		composer = historyComposerStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatus(),
		composer.Width(maxInt(10, m.width-2)).Render(m.textarea.View()),
	)
}

func (m *Model) renderHeader() string {
	conn := mutedStyle.Render(m.state.connectionLabel())
	if m.state.Connected {
		conn = onlineStyle.Render(m.state.connectionLabel())
	}
	left := titleStyle.Render("Stock Chat")
	right := mutedStyle.Render("advisor: ") + m.state.Personality + "  " + conn
	return lipgloss.NewStyle().
		Padding(0, 1).
		Width(maxInt(20, m.width)).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().PaddingLeft(2).Render(right)))
}

func (m *Model) renderStatus() string {
	text := m.state.Status
	if m.state.HistoryMode {
		text = historyStatus(m.history.Cursor(), m.history.Len())
	}
	if strings.TrimSpace(text) == "" {
		text = "enter send • ↑/↓ history • pgup/pgdn scroll • ctrl+y copy • ctrl+c quit"
	}
	return statusStyle.Width(maxInt(20, m.width)).Render(text)
}
