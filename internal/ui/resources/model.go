package resources

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/trade-alerts/internal/keys"
	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/theme"
)

// OpenLinkMsg is sent when the user opens a resource link. Resolving the
// target is left to the receiver.
type OpenLinkMsg struct {
	Link model.ResourceLink
}

// Model is the resource link list.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a resource list model.
func New(k *keys.KeyMap, width, height int) Model {
	links := Entries()
	items := make([]list.Item, len(links))
	for i, l := range links {
		items[i] = LinkItem{Link: l}
	}

	l := list.New(items, LinkDelegate{}, width, height)
	l.Title = "Resources"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the resource list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Select) {
		item, ok := m.list.SelectedItem().(LinkItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return OpenLinkMsg{Link: item.Link}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Links returns the links in the order they are rendered.
func (m Model) Links() []model.ResourceLink {
	items := m.list.Items()
	out := make([]model.ResourceLink, 0, len(items))
	for _, it := range items {
		if li, ok := it.(LinkItem); ok {
			out = append(out, li.Link)
		}
	}
	return out
}

// View renders the list.
func (m Model) View() string {
	return m.list.View()
}

// Width returns the width the list renders at.
func (m Model) Width() int { return m.width }

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}
