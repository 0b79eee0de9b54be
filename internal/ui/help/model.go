// Package help renders the keyboard shortcut overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/keys"
	"github.com/nhle/trade-alerts/internal/theme"
)

// Model is the help overlay. Each key group gets its own section, and
// commands from the palette are listed after them.
type Model struct {
	keys     *keys.KeyMap
	help     help.Model
	commands []string
	width    int
	height   int
}

// New creates a help overlay for k. commands are listed under their own
// heading; nil omits it.
func New(k *keys.KeyMap, commands []string, width, height int) Model {
	h := help.New()
	h.ShowAll = true
	m := Model{
		keys:     k,
		help:     h,
		commands: commands,
	}
	m.SetSize(width, height)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(theme.TokenText)).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(theme.TokenAccent))

	commandStyle = lipgloss.NewStyle().
			Foreground(theme.Color(theme.TokenMuted))
)

// View renders the overlay.
func (m Model) View() string {
	sections := []string{titleStyle.Render("Keyboard Shortcuts")}

	for _, g := range m.keys.Groups() {
		sections = append(sections,
			sectionStyle.Render(g.Title),
			m.help.FullHelpView([][]key.Binding{g.Bindings}),
			"",
		)
	}

	if len(m.commands) > 0 {
		sections = append(sections,
			sectionStyle.Render("Commands"),
			commandStyle.Render(":"+strings.Join(m.commands, "  :")),
		)
	}

	return theme.PanelStyle.
		Width(max(m.width-4, 0)).
		Height(max(m.height-4, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = max(width-4, 0)
}
