// Package power prevents the operating system from idling into sleep
// or blanking the display while the clock runs. One Start call at
// startup, one Stop at shutdown; a host without a usable mechanism
// gets a no-op inhibitor rather than an error the user would see.
package power

import "github.com/mescon/uclock/internal/logger"

// Inhibitor suppresses system idle-sleep and display blanking.
type Inhibitor interface {
	// Start begins inhibiting. Returns an error if the platform
	// mechanism is unavailable; callers treat this as non-fatal.
	Start() error

	// Stop releases the inhibition. Safe to call multiple times and
	// before Start.
	Stop()
}

// New returns a platform-appropriate Inhibitor.
// See power_windows.go, power_darwin.go, power_linux.go.
func New() Inhibitor {
	return newInhibitor()
}

// noopInhibitor stands in when no platform mechanism exists. The
// capability gap is logged once and never shown to the user.
type noopInhibitor struct {
	reason string
}

func (n *noopInhibitor) Start() error {
	logger.Infof("sleep inhibition unavailable: %s", n.reason)
	return nil
}

func (n *noopInhibitor) Stop() {}
