package config

import "time"

// UndoConfig tunes the delayed-delete flow.
type UndoConfig struct {
	// CommitDelay is the undo window between the optimistic removal and the
	// upstream delete.
	CommitDelay time.Duration `env:"UNDO_COMMIT_DELAY" envDefault:"5s"`

	// ToastClose keeps the undo toast visible slightly past the window.
	ToastClose time.Duration `env:"UNDO_TOAST_CLOSE" envDefault:"5200ms"`

	// CommitTimeout bounds the upstream delete issued after the window.
	CommitTimeout time.Duration `env:"UNDO_COMMIT_TIMEOUT" envDefault:"15s"`

	// ReplaceToasts switches the toast layer to a single visible slot.
	ReplaceToasts bool `env:"UNDO_REPLACE_TOASTS" envDefault:"false"`
}

// Sanitize keeps the toast visible at least as long as the undo window, so
// the undo button cannot disappear while the deletion is still cancellable.
func (u *UndoConfig) Sanitize() {
	if u.CommitDelay <= 0 {
		u.CommitDelay = 5 * time.Second
	}
	if u.CommitTimeout <= 0 {
		u.CommitTimeout = 15 * time.Second
	}
	if u.ToastClose < u.CommitDelay {
		u.ToastClose = u.CommitDelay + 200*time.Millisecond
	}
}
