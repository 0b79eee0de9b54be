package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/format"
	"github.com/nhle/trade-alerts/internal/notify"
	"github.com/nhle/trade-alerts/internal/theme"
)

// View renders the stack, oldest toast on top.
func (m Model) View() string {
	if len(m.items) == 0 {
		return ""
	}

	toasts := make([]string, 0, len(m.items))
	for _, n := range m.items {
		toasts = append(toasts, m.renderToast(n))
	}
	return lipgloss.JoinVertical(lipgloss.Right, toasts...)
}

// renderToast draws a single notification. A dismissing toast is drawn
// faint while its grace period runs.
func (m Model) renderToast(n *notify.Notification) string {
	alert := n.Alert()
	d := theme.CategoryStyle(alert.Category)
	dismissing := n.State() != notify.StateVisible

	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Color(d.Foreground)).
		Render(d.Icon + " " + d.Label)

	var title []string
	if alert.Ticker != "" {
		title = append(title, lipgloss.NewStyle().Bold(true).Render(alert.Ticker))
	}
	if alert.Label != "" {
		title = append(title, alert.Label)
	}
	if len(title) > 0 {
		head += "  " + strings.Join(title, " · ")
	}

	lines := []string{head}
	if alert.Message != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Color(theme.TokenText)).
			Render(alert.Message))
	}
	if ago := format.Ago(alert.CreatedAt, m.cfg.Clock.Now()); ago != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Color(theme.TokenMuted)).
			Render(ago))
	}

	inner := m.width - 4
	if inner < 16 {
		inner = 16
	}

	style := d.BorderStyle().
		Padding(0, 1).
		Width(inner)
	if dismissing {
		style = style.
			Faint(true).
			BorderForeground(theme.Color(theme.TokenSubtle))
	}

	return style.Render(strings.Join(lines, "\n"))
}
