package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/theme"
	"github.com/nhle/trade-alerts/internal/ui/banner"
	"github.com/nhle/trade-alerts/internal/ui/pill"
)

const (
	// tabsHeight is the number of rows taken by the tab strip.
	tabsHeight = 3

	// toastWidth is the width of the toast column.
	toastWidth = 44
)

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Trade Alerts", m.feedStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewSettings:
		return m.settings.View()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.tabs.View(m.bodyWidth()),
		m.renderTab(),
	)
	return m.layout.RenderWithSidebar(body, m.toasts.View())
}

// bodyWidth is the width left for the dashboard once toasts take their
// column.
func (m Model) bodyWidth() int {
	w := m.layout.ContentWidth()
	if m.toasts.Len() > 0 {
		w -= toastWidth
	}
	return max(w, 20)
}

// renderTab renders the active tab's body.
func (m Model) renderTab() string {
	width := m.bodyWidth()

	if m.loading {
		return m.skeleton.View()
	}
	if m.loadErr != nil {
		return banner.Banner{
			Severity: model.SeverityError,
			Title:    "Feed unavailable",
			Message:  m.loadErr.Error() + "\nPress r to reload.",
		}.Render(width)
	}

	switch m.tabs.ActiveTitle() {
	case TabAlerts:
		return m.renderAlerts(width)
	case TabTrades:
		if len(m.snap.Trades) == 0 {
			return banner.Banner{Severity: model.SeverityInfo, Message: "No closed trades yet."}.Render(width)
		}
		return pill.Row(m.snap.Trades, width)
	case TabResources:
		return m.resources.View()
	default:
		return ""
	}
}

// renderAlerts renders the alert history with the cursor row highlighted.
func (m Model) renderAlerts(width int) string {
	if len(m.snap.Alerts) == 0 {
		return banner.Banner{Severity: model.SeverityInfo, Message: "No alerts yet."}.Render(width)
	}

	lines := make([]string, 0, len(m.snap.Alerts))
	for i, a := range m.snap.Alerts {
		d := theme.CategoryStyle(a.Category)
		badge := lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(d.Foreground)).
			Width(9).
			Render(d.Icon + " " + d.Label)

		text := strings.TrimSpace(fmt.Sprintf("%s %s", a.Ticker, a.Label))
		line := badge + " " + text
		if a.Message != "" {
			line += lipgloss.NewStyle().
				Foreground(theme.Color(theme.TokenMuted)).
				Render("  " + a.Message)
		}

		if i == m.alertCursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		lines = append(lines, lipgloss.NewStyle().MaxWidth(width).Render(line))
	}
	return strings.Join(lines, "\n")
}

// feedStatus returns a short string describing the feed state.
func (m Model) feedStatus() string {
	switch {
	case m.loading:
		return "loading feed"
	case m.loadErr != nil:
		return "feed error"
	default:
		return fmt.Sprintf("%d alerts · %d trades", len(m.snap.Alerts), len(m.snap.Trades))
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return ": close command | enter execute | esc back"
	case ViewSettings:
		return "tab next field | enter submit | esc back"
	}

	if m.status != "" {
		return m.status
	}

	switch m.tabs.ActiveTitle() {
	case TabAlerts:
		return "q quit | ? help | tab switch | enter replay | x dismiss | r reload"
	case TabResources:
		return "q quit | ? help | tab switch | enter open | x dismiss"
	default:
		return "q quit | ? help | tab switch | x dismiss | r reload"
	}
}
