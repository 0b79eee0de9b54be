// Package tabs renders the dashboard's tab strip.
package tabs

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/theme"
)

// Model is an ordered set of tab titles with one active tab.
type Model struct {
	titles []string
	active int
}

// New creates a tab strip with the first tab active.
func New(titles ...string) Model {
	return Model{titles: append([]string(nil), titles...)}
}

// Titles returns the tab titles in order.
func (m Model) Titles() []string {
	return append([]string(nil), m.titles...)
}

// Active returns the index of the active tab.
func (m Model) Active() int { return m.active }

// ActiveTitle returns the active tab's title, or "" with no tabs.
func (m Model) ActiveTitle() string {
	if len(m.titles) == 0 {
		return ""
	}
	return m.titles[m.active]
}

// Next activates the following tab, wrapping at the end.
func (m *Model) Next() {
	if len(m.titles) == 0 {
		return
	}
	m.active = (m.active + 1) % len(m.titles)
}

// Prev activates the preceding tab, wrapping at the start.
func (m *Model) Prev() {
	if len(m.titles) == 0 {
		return
	}
	m.active = (m.active - 1 + len(m.titles)) % len(m.titles)
}

// Set activates tab i. Out-of-range indexes are ignored.
func (m *Model) Set(i int) {
	if i >= 0 && i < len(m.titles) {
		m.active = i
	}
}

// Select activates the tab with the given title and reports whether it
// exists.
func (m *Model) Select(title string) bool {
	for i, t := range m.titles {
		if t == title {
			m.active = i
			return true
		}
	}
	return false
}

var (
	activeTab = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(theme.Color(theme.TokenAccent)).
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(theme.Color(theme.TokenAccent))

	inactiveTab = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(theme.Color(theme.TokenMuted)).
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(theme.Color(theme.TokenBorder))
)

// View renders the tab strip at the given width.
func (m Model) View(width int) string {
	rendered := make([]string, len(m.titles))
	for i, t := range m.titles {
		if i == m.active {
			rendered[i] = activeTab.Render(t)
		} else {
			rendered[i] = inactiveTab.Render(t)
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}
