// Package clock provides an abstraction over time operations for testability.
// Production code uses RealClock; tests inject a MockClock so the
// second-boundary synchronization wait runs deterministically.
package clock

import "time"

// Clock provides an abstraction over time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep blocks the calling goroutine for the duration.
	Sleep(d time.Duration)
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now implements Clock.Now using time.Now.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Sleep implements Clock.Sleep using time.Sleep.
func (c *RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
