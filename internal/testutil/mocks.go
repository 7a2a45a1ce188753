// Package testutil provides test utilities shared across packages,
// chiefly a deterministic clock for driving the synchronization wait
// and refresh logic without real sleeps.
package testutil

import (
	"sync"
	"time"

	"github.com/mescon/uclock/internal/clock"
)

// =============================================================================
// MockClock - Testable time abstraction
// =============================================================================

// MockClock implements clock.Clock for testing, providing deterministic
// control over time-dependent operations like the second-boundary sync.
type MockClock struct {
	mu     sync.Mutex
	now    time.Time
	slept  time.Duration
	sleeps int
}

// Compile-time assertion that MockClock implements clock.Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a new MockClock with the current time as initial value.
func NewMockClock() *MockClock {
	return &MockClock{
		now: time.Now(),
	}
}

// NewMockClockAt creates a new MockClock with a specific initial time.
func NewMockClockAt(t time.Time) *MockClock {
	return &MockClock{
		now: t,
	}
}

// Now returns the mock's current time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetNow sets the mock's current time.
func (m *MockClock) SetNow(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Sleep advances the mock's time by d without blocking. The sync wait
// polls Now between Sleeps, so advancing here is exactly what a real
// blocked goroutine observes on waking.
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	m.slept += d
	m.sleeps++
}

// Slept reports the total duration passed to Sleep.
func (m *MockClock) Slept() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slept
}

// SleepCount reports how many times Sleep was called.
func (m *MockClock) SleepCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sleeps
}
