// Package banner renders inline error, warning and info banners.
package banner

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/theme"
)

// Banner is a one-off message box. Title is optional; when empty the
// severity label is used.
type Banner struct {
	Severity model.Severity
	Title    string
	Message  string
}

// Render draws the banner at the given outer width.
func (b Banner) Render(width int) string {
	d := theme.SeverityStyle(b.Severity)

	title := b.Title
	if title == "" {
		title = d.Label
	}

	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Color(d.Foreground)).
		Render(d.Icon + " " + title)

	body := lipgloss.NewStyle().
		Foreground(theme.Color(theme.TokenText)).
		Render(b.Message)

	content := head
	if b.Message != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, head, body)
	}

	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	return d.BorderStyle().
		Background(theme.Color(d.Background)).
		Padding(0, 1).
		Width(inner).
		Render(content)
}
