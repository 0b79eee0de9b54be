// Package toast hosts a stack of auto-dismissing alert notifications in
// a Bubble Tea program.
package toast

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/nhle/trade-alerts/internal/model"
	"github.com/nhle/trade-alerts/internal/notify"
)

// StateMsg reports that a toast changed state.
type StateMsg struct {
	ID    string
	State notify.State
}

// DismissedMsg reports that a toast finished dismissing and has been
// removed from the stack.
type DismissedMsg struct {
	ID    string
	Alert model.Alert
}

// Config controls toast behaviour.
type Config struct {
	// Duration is how long each toast stays visible. Zero means
	// notify.DefaultDuration.
	Duration time.Duration

	// MaxVisible caps the number of visible toasts; pushing past it
	// dismisses the oldest. Zero means 3.
	MaxVisible int

	Clock  clockwork.Clock
	Logger zerolog.Logger
}

// hub carries timer events from notification goroutines to the Bubble
// Tea runtime. It is shared by every copy of a Model.
type hub struct {
	events chan tea.Msg
	done   chan struct{}
	once   sync.Once
	closed atomic.Bool
}

// post delivers msg without blocking the caller. Observers run on the
// Update goroutine, which is also what drains events through Wait.
func (h *hub) post(msg tea.Msg) {
	go h.send(msg)
}

// send delivers msg unless the hub has been closed.
func (h *hub) send(msg tea.Msg) {
	select {
	case h.events <- msg:
	case <-h.done:
	}
}

// Model is the toast stack.
type Model struct {
	cfg   Config
	hub   *hub
	items []*notify.Notification
	width int
}

// New creates an empty toast stack.
func New(cfg Config) Model {
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = 3
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return Model{
		cfg: cfg,
		hub: &hub{
			events: make(chan tea.Msg, 16),
			done:   make(chan struct{}),
		},
		width: 44,
	}
}

// Init starts listening for toast events.
func (m Model) Init() tea.Cmd {
	return m.Wait()
}

// Wait returns a tea.Cmd that blocks until the next toast event. It must
// be re-issued after every StateMsg or DismissedMsg, which Update does.
func (m Model) Wait() tea.Cmd {
	h := m.hub
	return func() tea.Msg {
		select {
		case msg := <-h.events:
			return msg
		case <-h.done:
			return nil
		}
	}
}

// Push shows a new toast for alert. If that makes more than MaxVisible
// toasts visible, the oldest visible one starts dismissing.
func (m *Model) Push(alert model.Alert) {
	if m.hub.closed.Load() {
		return
	}

	h := m.hub
	id := uuid.NewString()
	n := notify.New(alert,
		func() { h.send(DismissedMsg{ID: id, Alert: alert}) },
		notify.WithID(id),
		notify.WithDuration(m.cfg.Duration),
		notify.WithClock(m.cfg.Clock),
		notify.WithLogger(m.cfg.Logger),
		notify.WithObserver(func(s notify.State) {
			if s == notify.StateDismissing {
				h.post(StateMsg{ID: id, State: s})
			}
		}),
	)
	m.items = append(m.items, n)

	visible := m.visible()
	for len(visible) > m.cfg.MaxVisible {
		visible[0].Dismiss()
		visible = visible[1:]
	}
}

// SetLimits changes the duration and visible cap for toasts pushed from
// now on. Toasts already on screen keep their timers.
func (m *Model) SetLimits(d time.Duration, maxVisible int) {
	m.cfg.Duration = d
	if maxVisible > 0 {
		m.cfg.MaxVisible = maxVisible
	}
}

// Update handles toast events.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg:
		return m, m.Wait()

	case DismissedMsg:
		m.remove(msg.ID)
		return m, m.Wait()
	}
	return m, nil
}

// DismissLatest starts dismissing the newest visible toast, as a close
// button would. It reports whether there was one.
func (m *Model) DismissLatest() bool {
	visible := m.visible()
	if len(visible) == 0 {
		return false
	}
	visible[len(visible)-1].Dismiss()
	return true
}

// DismissAll starts dismissing every visible toast.
func (m *Model) DismissAll() {
	for _, n := range m.visible() {
		n.Dismiss()
	}
}

// Close tears down every toast and stops the event listener. Pending
// timers are cancelled and no DismissedMsg is delivered afterwards.
func (m *Model) Close() {
	m.hub.once.Do(func() {
		m.hub.closed.Store(true)
		for _, n := range m.items {
			n.Teardown()
		}
		close(m.hub.done)
	})
	m.items = nil
}

// Items returns the toasts currently on screen, oldest first.
func (m Model) Items() []*notify.Notification {
	return append([]*notify.Notification(nil), m.items...)
}

// Len returns the number of toasts on screen.
func (m Model) Len() int { return len(m.items) }

// SetSize updates the width available to the stack.
func (m *Model) SetSize(width, _ int) {
	m.width = min(width, 44)
}

func (m Model) visible() []*notify.Notification {
	var out []*notify.Notification
	for _, n := range m.items {
		if n.State() == notify.StateVisible {
			out = append(out, n)
		}
	}
	return out
}

func (m *Model) remove(id string) {
	kept := make([]*notify.Notification, 0, len(m.items))
	for _, n := range m.items {
		if n.ID() != id {
			kept = append(kept, n)
		}
	}
	m.items = kept
}
