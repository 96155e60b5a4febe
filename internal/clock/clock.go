// Package clock provides time functionality that can be substituted in tests.
// Timer-driven components (delete controllers, toast expiry) take a Clock so
// tests can advance time deterministically instead of sleeping.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a cancellable delayed action armed via Clock.AfterFunc.
type Timer interface {
	// Stop prevents the timer from firing. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Clock provides the current time and delayed function execution.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// AfterFunc arms fn to run after d elapses and returns a cancellable handle.
	AfterFunc(d time.Duration, fn func()) Timer
}

// System implements Clock using real system time.
type System struct{}

// Now returns the current system time.
func (System) Now() time.Time { return time.Now() }

// AfterFunc arms fn on a real time.Timer.
func (System) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Fake implements Clock with manually advanced time for testing.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

// NewFake creates a Fake clock starting at the given time.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// AfterFunc registers fn to run once the fake time advances past d.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{clock: f, at: f.now.Add(d), seq: f.seq, fn: fn}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves the fake time forward and fires due timers in deadline order.
// Timer callbacks run synchronously on the calling goroutine.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	now := f.now

	var due []*fakeTimer
	remaining := f.timers[:0]
	for _, t := range f.timers {
		if !t.stopped && !t.at.After(now) {
			due = append(due, t)
			continue
		}
		remaining = append(remaining, t)
	}
	f.timers = remaining
	f.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending reports the number of armed, unfired timers.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type fakeTimer struct {
	clock   *Fake
	at      time.Time
	seq     int
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	// Already fired timers have been removed from the slice.
	for _, armed := range t.clock.timers {
		if armed == t {
			t.stopped = true
			return true
		}
	}
	return false
}
