package resources

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/theme"
)

// entries is the fixed, ordered set of resource links.
var entries = [...]model.ResourceLink{
	{Icon: "video", Label: "Video Library", Target: "/videos", External: true},
	{Icon: "tracker", Label: "Trade Tracker", Target: "/trades", External: false},
	{Icon: "star", Label: "My Favorites", Target: "/favorites", External: false},
	{Icon: "download", Label: "Export CSV", Target: "/export/trades.csv", External: true},
	{Icon: "settings", Label: "Alert Settings", Target: "/settings/alerts", External: false},
}

// Entries returns the resource links in display order. The slice is a
// fresh copy on every call.
func Entries() []model.ResourceLink {
	out := make([]model.ResourceLink, len(entries))
	copy(out, entries[:])
	return out
}

// Glyph maps an icon tag to the character drawn for it.
func Glyph(icon string) string {
	switch icon {
	case "video":
		return "▶"
	case "tracker":
		return "☰"
	case "star":
		return "★"
	case "download":
		return "⇩"
	case "settings":
		return "⚙"
	default:
		return "•"
	}
}

// LinkItem wraps a model.ResourceLink so it can be used in a bubbles/list.
type LinkItem struct {
	Link model.ResourceLink
}

// FilterValue returns the string used for fuzzy filtering.
func (i LinkItem) FilterValue() string { return i.Link.Label }

// LinkDelegate implements list.ItemDelegate for resource links.
type LinkDelegate struct{}

// Height returns the number of lines each item takes.
func (d LinkDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d LinkDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d LinkDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single link line.
func (d LinkDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(LinkItem)
	if !ok {
		return
	}

	icon := lipgloss.NewStyle().
		Foreground(theme.Color(theme.TokenAccent)).
		Render(Glyph(li.Link.Icon))

	external := ""
	if li.Link.External {
		external = lipgloss.NewStyle().
			Foreground(theme.Color(theme.TokenMuted)).
			Render(" ↗")
	}

	line := fmt.Sprintf("%s %s%s", icon, li.Link.Label, external)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
