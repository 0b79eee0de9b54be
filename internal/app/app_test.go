package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nhle/trade-alerts/internal/feed"
	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/notify"
	"github.com/nhle/trade-alerts/internal/ui/command"
	settings "github.com/nhle/trade-alerts/internal/ui/config"
	"github.com/nhle/trade-alerts/internal/ui/resources"
	"github.com/nhle/trade-alerts/internal/ui/toast"
)

var snapshot = feed.Snapshot{
	Alerts: []model.Alert{
		{Category: model.CategoryExit, Ticker: "TSLA", Label: "Stop hit", CreatedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)},
		{Category: model.CategoryUpdate, Ticker: "NVDA", Label: "Trail stop", CreatedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{Category: model.CategoryEntry, Ticker: "AAPL", Label: "Breakout", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Category: model.CategoryEntry, Ticker: "MSFT", Label: "Gap fill", CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	},
	Trades: []model.Trade{
		{Ticker: "AAPL", ReturnPct: decimal.RequireFromString("12.5"), Win: true},
		{Ticker: "TSLA", ReturnPct: decimal.RequireFromString("-4.2")},
	},
}

func newTestModel(t *testing.T, load Loader) Model {
	t.Helper()
	cfg := model.DefaultAppConfig()
	cfg.Feed.Path = "feed.yaml"
	m := New(Options{
		Config: cfg,
		Clock:  clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		Loader: load,
	})
	t.Cleanup(m.toasts.Close)

	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func loaded(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t, func(string) (feed.Snapshot, error) { return snapshot, nil })
	return update(t, m, m.loadFeed()())
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewBeforeResize(t *testing.T) {
	m := New(Options{})
	t.Cleanup(m.toasts.Close)
	require.Equal(t, "Loading...", m.View())
}

func TestLoadingShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, func(string) (feed.Snapshot, error) { return snapshot, nil })
	require.True(t, m.loading)
	require.Contains(t, m.View(), "loading feed")
	require.Contains(t, m.View(), "░")
}

func TestLoaderReceivesConfiguredPath(t *testing.T) {
	var got string
	m := newTestModel(t, func(path string) (feed.Snapshot, error) {
		got = path
		return feed.Snapshot{}, nil
	})
	msg := m.loadFeed()()
	require.IsType(t, feedLoadedMsg{}, msg)
	require.Equal(t, "feed.yaml", got)
}

func TestFeedLoadedPushesNewestToasts(t *testing.T) {
	m := loaded(t)
	require.False(t, m.loading)
	require.Equal(t, 3, m.toasts.Len())

	items := m.toasts.Items()
	require.Equal(t, "NVDA", items[1].Alert().Ticker)
	require.Equal(t, "TSLA", items[2].Alert().Ticker, "newest alert is pushed last")

	view := m.View()
	require.Contains(t, view, "4 alerts · 2 trades")
	require.Contains(t, view, "Breakout")
	require.Contains(t, view, "Stop hit")
}

func TestFeedErrorShowsBanner(t *testing.T) {
	m := newTestModel(t, func(string) (feed.Snapshot, error) {
		return feed.Snapshot{}, errors.New("no such file")
	})
	m = update(t, m, m.loadFeed()())

	require.Error(t, m.loadErr)
	view := m.View()
	require.Contains(t, view, "Feed unavailable")
	require.Contains(t, view, "no such file")
	require.Equal(t, 0, m.toasts.Len())
}

func TestTabKeysCycle(t *testing.T) {
	m := loaded(t)
	require.Equal(t, TabAlerts, m.tabs.ActiveTitle())

	m = update(t, m, keyMsg("tab"))
	require.Equal(t, TabTrades, m.tabs.ActiveTitle())
	require.Contains(t, m.View(), "+12.50%")

	m = update(t, m, keyMsg("tab"))
	require.Equal(t, TabResources, m.tabs.ActiveTitle())
	require.Contains(t, m.View(), "Video Library")

	m = update(t, m, keyMsg("h"))
	require.Equal(t, TabTrades, m.tabs.ActiveTitle())
}

func TestAlertCursorAndReplay(t *testing.T) {
	m := loaded(t)
	m.toasts.DismissAll()

	m = update(t, m, keyMsg("j"))
	m = update(t, m, keyMsg("j"))
	require.Equal(t, 2, m.alertCursor)

	m = update(t, m, keyMsg("k"))
	require.Equal(t, 1, m.alertCursor)

	before := m.toasts.Len()
	m = update(t, m, keyMsg("enter"))
	require.Equal(t, before+1, m.toasts.Len())
	items := m.toasts.Items()
	require.Equal(t, "NVDA", items[len(items)-1].Alert().Ticker)
}

func TestDismissKey(t *testing.T) {
	m := loaded(t)
	m = update(t, m, keyMsg("x"))

	items := m.toasts.Items()
	require.Len(t, items, 3)
	require.Equal(t, notify.StateDismissing, items[2].State())
	require.Equal(t, notify.StateVisible, items[0].State())
	require.Equal(t, notify.StateVisible, items[1].State())
}

func TestCommands(t *testing.T) {
	m := loaded(t)

	m = update(t, m, command.CommandMsg("trades"))
	require.Equal(t, TabTrades, m.tabs.ActiveTitle())

	m = update(t, m, command.CommandMsg("resources"))
	require.Equal(t, TabResources, m.tabs.ActiveTitle())

	m = update(t, m, command.CommandMsg("alerts"))
	require.Equal(t, TabAlerts, m.tabs.ActiveTitle())

	m = update(t, m, command.CommandMsg("launch"))
	require.Contains(t, m.status, `unknown command "launch"`)

	m = update(t, m, command.CommandMsg("reload"))
	require.True(t, m.loading)
}

func TestCommandPaletteToggle(t *testing.T) {
	m := loaded(t)

	m = update(t, m, keyMsg(":"))
	require.Equal(t, ViewCommand, m.currentView)
	require.Contains(t, m.View(), "Command Palette")

	m = update(t, m, keyMsg("esc"))
	require.Equal(t, ViewDashboard, m.currentView)

	m = update(t, m, keyMsg("?"))
	require.Equal(t, ViewHelp, m.currentView)
	require.Contains(t, m.View(), "Keyboard Shortcuts")
	require.Contains(t, m.View(), "Navigation")
	require.Contains(t, m.View(), ":settings")

	m = update(t, m, keyMsg("?"))
	require.Equal(t, ViewDashboard, m.currentView)
}

func TestOpenLink(t *testing.T) {
	m := loaded(t)
	links := resources.Entries()

	m = update(t, m, resources.OpenLinkMsg{Link: links[1]})
	require.Equal(t, TabTrades, m.tabs.ActiveTitle())

	m = update(t, m, resources.OpenLinkMsg{Link: links[0]})
	require.Contains(t, m.status, "new window")

	m = update(t, m, resources.OpenLinkMsg{Link: links[2]})
	require.Contains(t, m.status, "navigating to /favorites")

	// The next key press clears the message.
	m = update(t, m, keyMsg("j"))
	require.Empty(t, m.status)
	require.Contains(t, m.View(), "q quit")
}

func TestUnknownCommandStatusClears(t *testing.T) {
	m := loaded(t)
	m = update(t, m, command.CommandMsg("launch"))
	require.Contains(t, m.View(), `unknown command "launch"`)

	m = update(t, m, keyMsg("tab"))
	require.Empty(t, m.status)
	require.NotContains(t, m.View(), "unknown command")
}

func TestResourcesFollowToastColumn(t *testing.T) {
	m := newTestModel(t, func(string) (feed.Snapshot, error) { return snapshot, nil })
	require.Equal(t, 140, m.resources.Width())

	m = update(t, m, m.loadFeed()())
	require.Positive(t, m.toasts.Len())
	require.Equal(t, 140-toastWidth, m.resources.Width())

	for _, n := range m.toasts.Items() {
		m = update(t, m, toast.DismissedMsg{ID: n.ID(), Alert: n.Alert()})
	}
	require.Zero(t, m.toasts.Len())
	require.Equal(t, 140, m.resources.Width())
}

func TestSettingsFromLinkSavesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := model.DefaultAppConfig()
	m := New(Options{
		Config:     cfg,
		ConfigPath: path,
		Clock:      clockwork.NewFakeClock(),
		Loader:     func(string) (feed.Snapshot, error) { return snapshot, nil },
	})
	t.Cleanup(m.toasts.Close)
	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})

	m = update(t, m, resources.OpenLinkMsg{Link: resources.Entries()[4]})
	require.Equal(t, ViewSettings, m.currentView)
	require.Contains(t, m.View(), "Alert Settings")

	// Palette keys are typed into the form, not intercepted.
	m = update(t, m, keyMsg("?"))
	require.Equal(t, ViewSettings, m.currentView)

	saved := *cfg
	saved.Display.ToastDurationMS = 1500
	saved.Display.MaxToasts = 5
	m = update(t, m, settings.ConfigSavedMsg{Config: saved})
	require.Equal(t, ViewDashboard, m.currentView)
	require.Equal(t, 1500, m.cfg.Display.ToastDurationMS)
	require.Contains(t, m.View(), "settings saved")

	m = update(t, m, m.loadFeed()())
	require.Equal(t, 4, m.toasts.Len(), "new cap applies to later pushes")
	for _, n := range m.toasts.Items() {
		require.Equal(t, 1500*time.Millisecond, n.Duration())
	}
}

func TestSettingsCommand(t *testing.T) {
	m := loaded(t)
	m = update(t, m, command.CommandMsg("settings"))
	require.Equal(t, ViewSettings, m.currentView)

	m = update(t, m, keyMsg("esc"))
	require.Equal(t, ViewDashboard, m.currentView)
}

func TestQuitTearsDownToasts(t *testing.T) {
	m := loaded(t)
	require.Positive(t, m.toasts.Len())
	items := m.toasts.Items()

	next, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	require.Equal(t, 0, next.(Model).toasts.Len())
	for _, n := range items {
		require.True(t, n.TornDown())
	}
}
