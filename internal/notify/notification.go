// Package notify implements the auto-dismissing notification lifecycle:
// a countdown while visible, a short grace period for the exit
// animation, then a single dismissal callback.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/nhle/trade-alerts/internal/model"
)

// State is the lifecycle state of a Notification.
type State int

const (
	StateVisible State = iota
	StateDismissing
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateDismissing:
		return "dismissing"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

const (
	// DefaultDuration is how long a notification stays visible when the
	// caller does not pick a duration.
	DefaultDuration = 5 * time.Second

	// GracePeriod separates the dismiss trigger from removal.
	GracePeriod = 300 * time.Millisecond
)

// Option configures a Notification.
type Option func(*Notification)

// WithDuration sets the visible duration. Non-positive values keep the
// default.
func WithDuration(d time.Duration) Option {
	return func(n *Notification) {
		if d > 0 {
			n.duration = d
		}
	}
}

// WithClock sets the clock used for both timers.
func WithClock(c clockwork.Clock) Option {
	return func(n *Notification) {
		if c != nil {
			n.clock = c
		}
	}
}

// WithObserver registers fn to be called after every state transition.
func WithObserver(fn func(State)) Option {
	return func(n *Notification) {
		n.observer = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(n *Notification) {
		n.log = l
	}
}

// WithID overrides the generated identifier.
func WithID(id string) Option {
	return func(n *Notification) {
		if id != "" {
			n.id = id
		}
	}
}

// Notification is a transient alert that dismisses itself after its
// duration. It is safe for concurrent use; timer callbacks run on the
// clock's goroutines.
type Notification struct {
	id        string
	alert     model.Alert
	duration  time.Duration
	clock     clockwork.Clock
	onDismiss func()
	observer  func(State)
	log       zerolog.Logger
	createdAt time.Time

	mu    sync.Mutex
	state State
	timer clockwork.Timer
	// gen is bumped whenever a timer is scheduled or cancelled; a callback
	// whose generation is stale does nothing.
	gen      uint64
	tornDown bool
}

// New creates a visible notification and starts its countdown.
// onDismiss may be nil.
func New(alert model.Alert, onDismiss func(), opts ...Option) *Notification {
	n := &Notification{
		id:        uuid.NewString(),
		alert:     alert,
		duration:  DefaultDuration,
		clock:     clockwork.NewRealClock(),
		onDismiss: onDismiss,
		log:       zerolog.Nop(),
		state:     StateVisible,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.createdAt = n.clock.Now()

	n.mu.Lock()
	n.schedule(n.duration, n.expire)
	n.mu.Unlock()

	n.log.Debug().
		Str("id", n.id).
		Str("category", string(alert.Category)).
		Dur("duration", n.duration).
		Msg("notification shown")

	return n
}

// ID returns the notification identifier.
func (n *Notification) ID() string { return n.id }

// Alert returns the payload the notification was created with.
func (n *Notification) Alert() model.Alert { return n.alert }

// Duration returns the effective visible duration.
func (n *Notification) Duration() time.Duration { return n.duration }

// CreatedAt returns the clock time at construction.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// State returns the current lifecycle state.
func (n *Notification) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// TornDown reports whether Teardown has been called.
func (n *Notification) TornDown() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.tornDown
}

// Dismiss starts dismissal early, as a close button would. It is a no-op
// unless the notification is still visible.
func (n *Notification) Dismiss() {
	n.mu.Lock()
	if n.tornDown || n.state != StateVisible {
		n.mu.Unlock()
		return
	}
	n.cancel()
	n.beginDismissing()
	n.mu.Unlock()

	n.log.Debug().Str("id", n.id).Msg("notification dismissed manually")
	n.notify(StateDismissing)
}

// Teardown cancels any pending timer. After it returns no callback fires
// and the state no longer changes. Calling it more than once is fine.
func (n *Notification) Teardown() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.tornDown {
		return
	}
	n.tornDown = true
	n.cancel()

	n.log.Debug().
		Str("id", n.id).
		Stringer("state", n.state).
		Msg("notification torn down")
}

// expire fires when the countdown elapses.
func (n *Notification) expire(gen uint64) {
	n.mu.Lock()
	if !n.current(gen) || n.state != StateVisible {
		n.mu.Unlock()
		return
	}
	n.timer = nil
	n.beginDismissing()
	n.mu.Unlock()

	n.notify(StateDismissing)
}

// finish fires when the grace period elapses.
func (n *Notification) finish(gen uint64) {
	n.mu.Lock()
	if !n.current(gen) || n.state != StateDismissing {
		n.mu.Unlock()
		return
	}
	n.timer = nil
	n.state = StateDismissed
	n.mu.Unlock()

	n.log.Debug().Str("id", n.id).Msg("notification removed")
	n.notify(StateDismissed)
	if n.onDismiss != nil {
		n.onDismiss()
	}
}

// beginDismissing moves to DISMISSING and arms the grace timer.
// Callers hold n.mu.
func (n *Notification) beginDismissing() {
	n.state = StateDismissing
	n.schedule(GracePeriod, n.finish)
}

// schedule arms a single timer. Callers hold n.mu.
func (n *Notification) schedule(d time.Duration, fn func(gen uint64)) {
	n.gen++
	gen := n.gen
	n.timer = n.clock.AfterFunc(d, func() { fn(gen) })
}

// cancel stops the pending timer, if any. Callers hold n.mu.
func (n *Notification) cancel() {
	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// current reports whether a callback of generation gen may still act.
// Callers hold n.mu.
func (n *Notification) current(gen uint64) bool {
	return !n.tornDown && gen == n.gen
}

func (n *Notification) notify(s State) {
	if n.observer != nil {
		n.observer(s)
	}
}
