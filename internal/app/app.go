package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/nhle/trade-alerts/internal/feed"
	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/ui"
	"github.com/nhle/trade-alerts/internal/ui/command"
	settings "github.com/nhle/trade-alerts/internal/ui/config"
	helpview "github.com/nhle/trade-alerts/internal/ui/help"
	"github.com/nhle/trade-alerts/internal/ui/resources"
	"github.com/nhle/trade-alerts/internal/ui/skeleton"
	"github.com/nhle/trade-alerts/internal/ui/tabs"
	"github.com/nhle/trade-alerts/internal/ui/toast"
)

// Tab titles, in display order.
const (
	TabAlerts    = "Alerts"
	TabTrades    = "Trades"
	TabResources = "Resources"
)

// feedLoadedMsg carries the result of reading the alert feed.
type feedLoadedMsg struct {
	snap feed.Snapshot
	err  error
}

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewHelp
	ViewCommand
	ViewSettings
)

// settingsTarget is the resource link that opens the settings editor.
const settingsTarget = "/settings/alerts"

// Loader reads a feed snapshot from path.
type Loader func(path string) (feed.Snapshot, error)

// Options configures the root model. Zero values fall back to defaults.
type Options struct {
	Config *model.AppConfig
	// ConfigPath is where the settings editor saves. Empty means
	// model.DefaultConfigPath().
	ConfigPath string
	Logger zerolog.Logger
	Clock  clockwork.Clock
	Loader Loader
}

// Model is the root Bubble Tea model that manages view routing,
// layout, and the dashboard components.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	cfg          *model.AppConfig
	log          zerolog.Logger
	loader       Loader
	keys         *KeyMap
	tabs         tabs.Model
	toasts       toast.Model
	skeleton     skeleton.Model
	resources    resources.Model
	helpView     helpview.Model
	commandView  command.Model
	settings     settings.Model
	snap         feed.Snapshot
	loading      bool
	loadErr      error
	alertCursor  int
	status       string
	ready        bool
}

// New creates a new root application model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = model.DefaultAppConfig()
	}
	loader := opts.Loader
	if loader == nil {
		loader = feed.Load
	}
	keys := DefaultKeyMap()
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = model.DefaultConfigPath()
	}

	return Model{
		currentView: ViewDashboard,
		cfg:         cfg,
		log:         opts.Logger,
		loader:      loader,
		keys:        keys,
		tabs:        tabs.New(TabAlerts, TabTrades, TabResources),
		toasts: toast.New(toast.Config{
			Duration:   cfg.Display.ToastDuration(),
			MaxVisible: cfg.Display.MaxToasts,
			Clock:      opts.Clock,
			Logger:     opts.Logger,
		}),
		skeleton:    skeleton.New(cfg.Display.Placeholder(), 80),
		resources:   resources.New(keys, 80, 20),
		helpView:    helpview.New(keys, command.Commands, 80, 24),
		commandView: command.New(80, 24),
		settings:    settings.New(*cfg, cfgPath, 80, 24),
		loading:     true,
	}
}

// Init starts the toast listener, the skeleton shimmer and the first
// feed load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.toasts.Init(),
		m.skeleton.Init(),
		m.loadFeed(),
	)
}

// Update handles messages and dispatches to the active view. Child
// sizes follow the toast column as it appears and disappears.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	hadToasts := m.toasts.Len() > 0
	next, cmd := m.update(msg)
	out := next.(Model)
	if out.ready && (out.toasts.Len() > 0) != hadToasts {
		out.resize()
	}
	return out, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.resize()
		return m, nil

	case feedLoadedMsg:
		return m.handleFeed(msg), nil

	case toast.StateMsg:
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd

	case toast.DismissedMsg:
		m.log.Debug().
			Str("id", msg.ID).
			Str("ticker", msg.Alert.Ticker).
			Msg("toast dismissed")
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd

	case skeleton.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.skeleton, cmd = m.skeleton.Update(msg)
		return m, cmd

	case resources.OpenLinkMsg:
		return m.openLink(msg.Link)

	case command.CommandMsg:
		m.currentView = m.previousView
		return m.executeCommand(string(msg))

	case settings.ConfigSavedMsg:
		return m.applySettings(msg.Config), nil

	case tea.KeyMsg:
		m.status = ""

		// Global keys that work regardless of current view
		switch msg.String() {
		case "ctrl+c":
			return m.quit()

		case "?":
			if m.currentView == ViewCommand || m.currentView == ViewSettings {
				break
			}
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case ":":
			if m.currentView == ViewSettings {
				break
			}
			if m.currentView == ViewCommand {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewCommand
			cmd := m.commandView.Focus()
			return m, cmd

		case "esc":
			if m.currentView != ViewDashboard {
				m.currentView = ViewDashboard
				return m, nil
			}
		}

		if m.currentView == ViewDashboard {
			return m.handleDashboardKeys(msg)
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleDashboardKeys processes keys while the dashboard is showing.
func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.DismissLatest()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}

	switch m.tabs.ActiveTitle() {
	case TabAlerts:
		return m.handleAlertKeys(msg), nil
	case TabResources:
		var cmd tea.Cmd
		m.resources, cmd = m.resources.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleAlertKeys moves the alert cursor and replays the selected alert
// as a toast on enter.
func (m Model) handleAlertKeys(msg tea.KeyMsg) Model {
	n := len(m.snap.Alerts)
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.alertCursor < n-1 {
			m.alertCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.alertCursor > 0 {
			m.alertCursor--
		}
	case key.Matches(msg, m.keys.Select):
		if m.alertCursor < n {
			m.toasts.Push(m.snap.Alerts[m.alertCursor])
		}
	}
	return m
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewSettings:
		m.settings, cmd = m.settings.Update(msg)
	}

	return m, cmd
}

// handleFeed stores a loaded snapshot and shows the newest alerts as
// toasts, oldest first so the newest ends up at the bottom.
func (m Model) handleFeed(msg feedLoadedMsg) Model {
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err
		m.log.Error().Err(msg.err).Str("path", m.cfg.Feed.Path).Msg("loading feed")
		return m
	}

	m.loadErr = nil
	m.snap = msg.snap
	m.alertCursor = 0
	m.log.Info().
		Int("alerts", len(msg.snap.Alerts)).
		Int("trades", len(msg.snap.Trades)).
		Msg("feed loaded")

	limit := min(len(msg.snap.Alerts), m.cfg.Display.MaxToasts)
	for i := limit - 1; i >= 0; i-- {
		m.toasts.Push(msg.snap.Alerts[i])
	}
	return m
}

// openLink hands a resource link to navigation. In-app targets switch
// views; everything else is reported in the status bar.
func (m Model) openLink(link model.ResourceLink) (tea.Model, tea.Cmd) {
	m.log.Info().
		Str("target", link.Target).
		Bool("external", link.External).
		Msg("open link")

	switch link.Target {
	case "/trades":
		m.tabs.Select(TabTrades)
		m.status = ""
		return m, nil
	case settingsTarget:
		return m.openSettings()
	}
	if link.External {
		m.status = fmt.Sprintf("opening %s in a new window", link.Target)
	} else {
		m.status = fmt.Sprintf("navigating to %s", link.Target)
	}
	return m, nil
}

// openSettings shows the settings editor filled from the current config.
func (m Model) openSettings() (tea.Model, tea.Cmd) {
	m.previousView = ViewDashboard
	m.currentView = ViewSettings
	cmd := m.settings.Open()
	return m, cmd
}

// applySettings switches to a saved config and returns to the dashboard.
// Toasts already showing keep their timers.
func (m Model) applySettings(cfg model.AppConfig) Model {
	m.cfg = &cfg
	m.toasts.SetLimits(cfg.Display.ToastDuration(), cfg.Display.MaxToasts)
	m.currentView = ViewDashboard
	m.status = "settings saved"
	m.log.Info().
		Int("toast_duration_ms", cfg.Display.ToastDurationMS).
		Int("max_toasts", cfg.Display.MaxToasts).
		Msg("settings saved")
	return m
}

// reload re-reads the feed, showing the skeleton meanwhile.
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.loadErr = nil
	m.skeleton = skeleton.New(m.cfg.Display.Placeholder(), m.bodyWidth())
	return m, tea.Batch(m.skeleton.Init(), m.loadFeed())
}

// quit tears down pending toast timers before exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.toasts.Close()
	return m, tea.Quit
}

// loadFeed returns a command that reads the configured feed.
func (m Model) loadFeed() tea.Cmd {
	load := m.loader
	path := m.cfg.Feed.Path
	return func() tea.Msg {
		snap, err := load(path)
		return feedLoadedMsg{snap: snap, err: err}
	}
}

// executeCommand handles a command string from the command palette.
func (m Model) executeCommand(cmd string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "alerts":
		m.tabs.Select(TabAlerts)
	case "trades":
		m.tabs.Select(TabTrades)
	case "resources":
		m.tabs.Select(TabResources)
	case "settings":
		return m.openSettings()
	case "dismiss":
		m.toasts.DismissAll()
	case "reload", "refresh":
		return m.reload()
	case "quit", "q":
		return m.quit()
	default:
		m.status = fmt.Sprintf("unknown command %q", cmd)
	}
	return m, nil
}

// resize propagates the layout to every child view.
func (m *Model) resize() {
	w := m.layout.ContentWidth()
	h := m.layout.ContentHeight()
	m.toasts.SetSize(toastWidth, h)
	m.skeleton.SetSize(m.bodyWidth(), h)
	m.resources.SetSize(m.bodyWidth(), h-tabsHeight)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
	m.settings.SetSize(w, h)
}
