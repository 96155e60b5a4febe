// Package notify implements the console's toast layer: ephemeral
// success/error/info messages with optional action buttons and auto-dismiss
// timers. One Notifier exists per session; the Hub keys notifiers by session
// so HTTP handlers can drain and act on a session's toasts.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sikayet/console-api/internal/clock"
)

// Kind classifies a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultAutoClose is the auto-dismiss duration when a call site does not
// override it.
const DefaultAutoClose = 3500 * time.Millisecond

// Mode selects how concurrent toasts behave.
type Mode int

const (
	// ModeQueue keeps every toast visible until its own timer expires.
	ModeQueue Mode = iota
	// ModeReplace shows a single slot: a new toast replaces the visible one
	// and resets the auto-close timer.
	ModeReplace
)

// Action is a toast's single action button. The callback stays invocable
// until the toast auto-closes or is dismissed.
type Action struct {
	Label string `json:"label"`
	fn    func()
}

// Toast is one ephemeral user-facing message.
type Toast struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"kind"`
	Title     string        `json:"title"`
	Desc      string        `json:"desc,omitempty"`
	Action    *Action       `json:"action,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	AutoClose time.Duration `json:"-"`
}

// toastJSON is the browser-facing shape; the auto-close duration goes out in
// milliseconds, matching the undo window field the delete endpoint reports.
type toastJSON struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Desc        string    `json:"desc,omitempty"`
	Action      *Action   `json:"action,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	AutoCloseMS int64     `json:"auto_close_ms"`
}

// MarshalJSON implements json.Marshaler.
func (t Toast) MarshalJSON() ([]byte, error) {
	return json.Marshal(toastJSON{
		ID:          t.ID,
		Kind:        t.Kind,
		Title:       t.Title,
		Desc:        t.Desc,
		Action:      t.Action,
		CreatedAt:   t.CreatedAt,
		AutoCloseMS: t.AutoClose.Milliseconds(),
	})
}

// Option customizes a single Show call.
type Option func(*showOpts)

type showOpts struct {
	autoClose time.Duration
	action    *Action
}

// WithAutoClose overrides the auto-dismiss duration.
func WithAutoClose(d time.Duration) Option {
	return func(o *showOpts) { o.autoClose = d }
}

// WithAction attaches an action button to the toast.
func WithAction(label string, fn func()) Option {
	return func(o *showOpts) { o.action = &Action{Label: label, fn: fn} }
}

// Notifier owns one session's toast state.
type Notifier struct {
	mu     sync.Mutex
	mode   Mode
	clock  clock.Clock
	toasts []*Toast
	timers map[string]clock.Timer
}

// NewNotifier constructs a Notifier in the given mode.
func NewNotifier(mode Mode, clk clock.Clock) *Notifier {
	if clk == nil {
		clk = clock.System{}
	}
	return &Notifier{
		mode:   mode,
		clock:  clk,
		timers: make(map[string]clock.Timer),
	}
}

// Show creates a toast and arms its auto-close timer. It returns the toast ID
// so callers can reference it (tests, action invocation).
func (n *Notifier) Show(kind Kind, title, desc string, opts ...Option) string {
	o := showOpts{autoClose: DefaultAutoClose}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Desc:      desc,
		Action:    o.action,
		AutoClose: o.autoClose,
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	t.CreatedAt = n.clock.Now()

	if n.mode == ModeReplace {
		// Single slot: drop whatever is showing and cancel its timer.
		for id, timer := range n.timers {
			timer.Stop()
			delete(n.timers, id)
		}
		n.toasts = n.toasts[:0]
	}

	n.toasts = append(n.toasts, t)
	id := t.ID
	n.timers[id] = n.clock.AfterFunc(o.autoClose, func() { n.expire(id) })
	return id
}

// Success shows a success toast.
func (n *Notifier) Success(title, desc string, opts ...Option) string {
	return n.Show(KindSuccess, title, desc, opts...)
}

// Error shows an error toast.
func (n *Notifier) Error(title, desc string, opts ...Option) string {
	return n.Show(KindError, title, desc, opts...)
}

// Info shows an info toast.
func (n *Notifier) Info(title, desc string, opts ...Option) string {
	return n.Show(KindInfo, title, desc, opts...)
}

// Active returns a snapshot of the currently visible toasts in display order.
func (n *Notifier) Active() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Toast, 0, len(n.toasts))
	for _, t := range n.toasts {
		out = append(out, *t)
	}
	return out
}

// Dismiss removes a toast before its timer expires. It reports whether the
// toast was still visible.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.removeLocked(id)
}

// InvokeAction runs a visible toast's action callback and dismisses the
// toast. It reports whether an action was invoked; expired or dismissed
// toasts are a no-op, so stale undo buttons cannot fire twice.
func (n *Notifier) InvokeAction(id string) bool {
	n.mu.Lock()
	var fn func()
	for _, t := range n.toasts {
		if t.ID == id && t.Action != nil {
			fn = t.Action.fn
			break
		}
	}
	if fn == nil {
		n.mu.Unlock()
		return false
	}
	n.removeLocked(id)
	n.mu.Unlock()

	// Run outside the lock: undo callbacks re-enter controller state.
	fn()
	return true
}

// Close cancels all timers; used on session teardown.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
	n.toasts = nil
}

func (n *Notifier) expire(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removeLocked(id)
}

func (n *Notifier) removeLocked(id string) bool {
	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}
	for i, t := range n.toasts {
		if t.ID == id {
			n.toasts = append(n.toasts[:i], n.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Hub keys notifiers by session ID.
type Hub struct {
	mu    sync.Mutex
	mode  Mode
	clock clock.Clock
	byKey map[string]*Notifier
}

// NewHub constructs a Hub whose notifiers use the given mode.
func NewHub(mode Mode, clk clock.Clock) *Hub {
	if clk == nil {
		clk = clock.System{}
	}
	return &Hub{mode: mode, clock: clk, byKey: make(map[string]*Notifier)}
}

// ForSession returns the session's notifier, creating it on first use.
func (h *Hub) ForSession(sessionID string) *Notifier {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, ok := h.byKey[sessionID]
	if !ok {
		n = NewNotifier(h.mode, h.clock)
		h.byKey[sessionID] = n
	}
	return n
}

// Remove tears down a session's notifier (logout, expiry).
func (h *Hub) Remove(sessionID string) {
	h.mu.Lock()
	n, ok := h.byKey[sessionID]
	delete(h.byKey, sessionID)
	h.mu.Unlock()
	if ok {
		n.Close()
	}
}
