package httpx

import (
	"context"
	"sync"
	"time"

	"github.com/sikayet/console-api/internal/clock"
	domainauth "github.com/sikayet/console-api/internal/domain/auth"
	"github.com/sikayet/console-api/internal/notify"
	"github.com/sikayet/console-api/internal/service"
	"github.com/sikayet/console-api/internal/undo"
	"github.com/sikayet/console-api/internal/upstream"
)

// deleteFlows owns one undo controller per session for a single resource.
// The controller holds the session's visible list snapshot; the commit
// closure carries the session's bearer token because the arming request's
// context is gone by the time the undo window elapses.
type deleteFlows[T any] struct {
	mu    sync.Mutex
	byKey map[string]*undo.Controller[T]

	hub    *notify.Hub
	clock  clock.Clock
	label  string
	itemID func(T) string
	commit func(ctx context.Context, id string) error

	commitDelay   time.Duration
	toastClose    time.Duration
	commitTimeout time.Duration
}

type deleteFlowOptions[T any] struct {
	Hub    *notify.Hub
	Clock  clock.Clock
	Label  string
	ItemID func(T) string
	Commit func(ctx context.Context, id string) error

	CommitDelay   time.Duration
	ToastClose    time.Duration
	CommitTimeout time.Duration
}

func newDeleteFlows[T any](opts deleteFlowOptions[T]) *deleteFlows[T] {
	return &deleteFlows[T]{
		byKey:         make(map[string]*undo.Controller[T]),
		hub:           opts.Hub,
		clock:         opts.Clock,
		label:         opts.Label,
		itemID:        opts.ItemID,
		commit:        opts.Commit,
		commitDelay:   opts.CommitDelay,
		toastClose:    opts.ToastClose,
		commitTimeout: opts.CommitTimeout,
	}
}

// forSession returns the session's controller, creating it on first use.
func (f *deleteFlows[T]) forSession(sess *domainauth.Session) *undo.Controller[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ctrl, ok := f.byKey[sess.ID]; ok {
		return ctrl
	}

	token := sess.Token
	actor := sess.User.Email
	ctrl := undo.NewController(undo.Options[T]{
		ItemID:      f.itemID,
		EntityLabel: f.label,
		Notifier:    f.hub.ForSession(sess.ID),
		Clock:       f.clock,
		Commit: func(ctx context.Context, id string) error {
			ctx = upstream.WithToken(ctx, token)
			ctx = service.WithActor(ctx, actor)
			return f.commit(ctx, id)
		},
		CommitDelay:   f.commitDelay,
		ToastClose:    f.toastClose,
		CommitTimeout: f.commitTimeout,
	})
	f.byKey[sess.ID] = ctrl
	return ctrl
}

// remove drops a session's controller (logout, expiry).
func (f *deleteFlows[T]) remove(sessionID string) {
	f.mu.Lock()
	delete(f.byKey, sessionID)
	f.mu.Unlock()
}
