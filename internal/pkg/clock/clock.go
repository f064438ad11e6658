// Package clock provides time and timer utilities for the application
package clock

import "time"

// Clock provides the current time and one-shot timers
type Clock interface {
	Now() time.Time

	// AfterFunc calls f in its own goroutine once d has elapsed.
	// The returned Timer cancels the call if stopped first.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending one-shot callback
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped.
	Stop() bool
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f with time.AfterFunc
func (c *Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
