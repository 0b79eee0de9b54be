// Package pill renders compact trade-result badges.
package pill

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/format"
	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/theme"
)

// Pill is a ticker plus its return, coloured by outcome.
type Pill struct {
	Trade model.Trade
}

// Text returns the unstyled pill content, e.g. "▲ AAPL +12.50%".
func (p Pill) Text() string {
	d := theme.OutcomeStyle(p.Trade.Win)
	return d.Icon + " " + p.Trade.Ticker + " " + format.Percent(p.Trade.ReturnPct)
}

// Render draws the pill.
func (p Pill) Render() string {
	return theme.OutcomeStyle(p.Trade.Win).Style().
		Bold(true).
		Padding(0, 1).
		Render(p.Text())
}

// Row renders pills side by side, wrapping onto new lines at width.
func Row(trades []model.Trade, width int) string {
	var lines []string
	var line []string
	used := 0
	for _, t := range trades {
		r := Pill{Trade: t}.Render()
		w := lipgloss.Width(r) + 1
		if used > 0 && used+w > width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, used = nil, 0
		}
		line = append(line, r, " ")
		used += w
	}
	if len(line) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
