// Package undo implements the optimistic delayed-delete controller: a row is
// removed from the visible list immediately, a cancellable commit timer is
// armed, and the backend delete only goes out once the undo window elapses
// without a cancellation. The commit callback and toast action are guarded by
// a generation counter so a stale undo reference can never restore twice or
// race a dispatched commit.
package undo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sikayet/console-api/internal/apperr"
	"github.com/sikayet/console-api/internal/clock"
	"github.com/sikayet/console-api/internal/notify"
)

// DefaultCommitDelay is the undo window observed by users.
const DefaultCommitDelay = 5000 * time.Millisecond

// DefaultToastClose keeps the undo control visible slightly past the window.
const DefaultToastClose = 5200 * time.Millisecond

// DefaultCommitTimeout bounds the backend delete issued after the window.
const DefaultCommitTimeout = 15 * time.Second

// State is the controller's externally observable state.
type State int

const (
	StateIdle State = iota
	StatePendingCommit
	StateCommitting
)

// CommitFunc issues the real backend delete for an id. It runs on a timer
// goroutine with a fresh bounded context.
type CommitFunc func(ctx context.Context, id string) error

// Options groups the dependencies for a Controller.
type Options[T any] struct {
	// ItemID extracts the stable unique id of an item.
	ItemID func(T) string
	// Commit performs the backend delete. Required.
	Commit CommitFunc
	// Notifier receives the delete/undo/failure toasts. Required.
	Notifier *notify.Notifier
	// EntityLabel names the entity in toast copy (e.g. "Guide").
	EntityLabel string
	// Clock is optional; the system clock is used when nil.
	Clock clock.Clock
	// CommitDelay is the undo window; DefaultCommitDelay when zero.
	CommitDelay time.Duration
	// ToastClose is the undo toast's auto-close; DefaultToastClose when zero.
	ToastClose time.Duration
	// CommitTimeout bounds the backend call; DefaultCommitTimeout when zero.
	CommitTimeout time.Duration
	// OnCommit, when set, observes commit outcomes (used for auditing).
	OnCommit func(id string, err error)
}

// Controller manages one list view's visible snapshot and its single pending
// deletion. All methods are safe for concurrent use.
type Controller[T any] struct {
	mu       sync.Mutex
	items    []T
	itemID   func(T) string
	commit   CommitFunc
	notifier *notify.Notifier
	label    string
	clock    clock.Clock

	delay         time.Duration
	toastClose    time.Duration
	commitTimeout time.Duration
	onCommit      func(id string, err error)

	pending *pendingDeletion[T]
	// committing is the id of the deletion whose backend call is in flight,
	// empty otherwise.
	committing string
	inFlight   int
	gen        uint64
}

type pendingDeletion[T any] struct {
	id       string
	snapshot T
	armedAt  time.Time
	timer    clock.Timer
	gen      uint64
}

// NewController constructs a Controller.
func NewController[T any](opts Options[T]) *Controller[T] {
	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}
	delay := opts.CommitDelay
	if delay <= 0 {
		delay = DefaultCommitDelay
	}
	toastClose := opts.ToastClose
	if toastClose <= 0 {
		toastClose = DefaultToastClose
	}
	commitTimeout := opts.CommitTimeout
	if commitTimeout <= 0 {
		commitTimeout = DefaultCommitTimeout
	}
	return &Controller[T]{
		itemID:        opts.ItemID,
		commit:        opts.Commit,
		notifier:      opts.Notifier,
		label:         opts.EntityLabel,
		clock:         clk,
		delay:         delay,
		toastClose:    toastClose,
		commitTimeout: commitTimeout,
		onCommit:      opts.OnCommit,
	}
}

// Replace swaps in a freshly fetched snapshot. An item matching the pending
// deletion, or one whose backend delete is still in flight, is filtered out
// so a refresh cannot resurrect an optimistically removed row.
func (c *Controller[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil && c.committing == "" {
		c.items = append([]T(nil), items...)
		return
	}
	kept := make([]T, 0, len(items))
	for _, it := range items {
		id := c.itemID(it)
		if c.pending != nil && id == c.pending.id {
			continue
		}
		if c.committing != "" && id == c.committing {
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
}

// Items returns a copy of the visible snapshot.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// State reports the controller's current state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.pending != nil:
		return StatePendingCommit
	case c.inFlight > 0:
		return StateCommitting
	default:
		return StateIdle
	}
}

// Delete optimistically removes the item with the given id and arms the
// delayed commit. If another deletion is still pending its timer is finalized
// first: cleared without firing and without restoring, the prior removal
// having already been decided in favor of deletion.
func (c *Controller[T]) Delete(id string) error {
	c.mu.Lock()

	idx := -1
	for i, it := range c.items {
		if c.itemID(it) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return apperr.NotFoundf("%s %q is not in the current list", c.label, id)
	}

	if c.pending != nil {
		c.pending.timer.Stop()
		c.pending = nil
	}

	snapshot := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)

	c.gen++
	gen := c.gen
	pd := &pendingDeletion[T]{
		id:       id,
		snapshot: snapshot,
		armedAt:  c.clock.Now(),
		gen:      gen,
	}
	pd.timer = c.clock.AfterFunc(c.delay, func() { c.fire(gen) })
	c.pending = pd
	c.mu.Unlock()

	if c.notifier != nil {
		c.notifier.Info(c.label+" deleted", "You can undo this action.",
			notify.WithAutoClose(c.toastClose),
			notify.WithAction("Undo", func() { c.undo(gen) }),
		)
	}
	return nil
}

// Undo cancels the pending deletion, if any, restoring the item to the front
// of the visible list. It reports whether a deletion was cancelled; once the
// window has elapsed and the commit dispatched, Undo is a no-op.
func (c *Controller[T]) Undo() bool {
	c.mu.Lock()
	if c.pending == nil {
		c.mu.Unlock()
		return false
	}
	gen := c.pending.gen
	c.mu.Unlock()
	return c.undo(gen)
}

// PendingID returns the id of the pending deletion, if any.
func (c *Controller[T]) PendingID() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return "", false
	}
	return c.pending.id, true
}

func (c *Controller[T]) undo(gen uint64) bool {
	c.mu.Lock()
	if c.pending == nil || c.pending.gen != gen {
		c.mu.Unlock()
		return false
	}
	pd := c.pending
	pd.timer.Stop()
	c.pending = nil
	// Restore at the front, matching the observed behavior.
	c.items = append([]T{pd.snapshot}, c.items...)
	c.mu.Unlock()

	if c.notifier != nil {
		c.notifier.Success(c.label+" restored", "The deletion was cancelled.")
	}
	return true
}

// fire runs when the undo window elapses. The generation check is the guard:
// a superseded or undone deletion never reaches the backend.
func (c *Controller[T]) fire(gen uint64) {
	c.mu.Lock()
	if c.pending == nil || c.pending.gen != gen {
		c.mu.Unlock()
		return
	}
	pd := c.pending
	c.pending = nil
	c.committing = pd.id
	c.inFlight++
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.commitTimeout)
	err := c.commit(ctx, pd.id)
	cancel()

	c.mu.Lock()
	c.inFlight--
	// Cleared before the failure-path restore so a later refresh does not
	// filter the legitimately restored row.
	c.committing = ""
	if err != nil {
		// Restore prepended; the view returns to a stable pre-delete state.
		c.items = append([]T{pd.snapshot}, c.items...)
	}
	c.mu.Unlock()

	if c.onCommit != nil {
		c.onCommit(pd.id, err)
	}
	if c.notifier == nil {
		return
	}
	if err != nil {
		c.notifier.Error("Delete failed", failureMessage(err))
		return
	}
	c.notifier.Success(c.label+" deleted", "")
}

// failureMessage prefers the normalized AppError message over the full chain.
func failureMessage(err error) string {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
