package config

import (
	"os"
	"path/filepath"
	"time"
)

// Version is set at build time via -ldflags
// Default "dev" is used for development builds
var Version = "dev"

// Settings holds the display and timing constants for the clock.
// uclock deliberately takes no command-line flags and reads no
// environment variables: the window is the whole interface. These
// values exist in one place so their rationale is documented and so
// tests can construct variants.
type Settings struct {
	// Title is the window title, shown in the terminal title bar.
	Title string

	// UptimeLabel is the heading drawn above the uptime value.
	UptimeLabel string

	// ClockLayout is the Go time layout for the date/time row.
	// Renders as e.g. "03/30/2023 12:34:56 AM" (22 visible characters).
	ClockLayout string

	// RefreshInterval is the steady-state repaint cadence.
	RefreshInterval time.Duration

	// SyncTolerance is how close to a whole-second boundary the
	// wall clock must be before the first refresh fires. Keeping this
	// under the display's one-second resolution makes the seconds
	// digit appear to change on the true second boundary.
	SyncTolerance time.Duration

	// SyncPollStep is the sleep between wall-clock polls while
	// waiting for a second boundary. Coarse enough to be cheap,
	// fine enough to land inside SyncTolerance.
	SyncPollStep time.Duration

	// ClockFontDivisor and UptimeFontDivisor size the two text rows
	// from the window height: clock = height/8, uptime = height/12.
	// The ratios are empirical; changing them unbalances the layout.
	ClockFontDivisor  int
	UptimeFontDivisor int

	// LogDir is where the rotating debug log lives. The TUI owns the
	// terminal, so nothing is ever written to stdout or stderr.
	LogDir string

	// LogLevel controls debug log verbosity: "debug", "info", "error".
	LogLevel string
}

// Default returns the canonical settings.
func Default() Settings {
	return Settings{
		Title:             "Uptime Clock",
		UptimeLabel:       "System Uptime",
		ClockLayout:       "01/02/2006 03:04:05 PM",
		RefreshInterval:   time.Second,
		SyncTolerance:     10 * time.Millisecond,
		SyncPollStep:      2 * time.Millisecond,
		ClockFontDivisor:  8,
		UptimeFontDivisor: 12,
		LogDir:            defaultLogDir(),
		LogLevel:          "info",
	}
}

func defaultLogDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "uclock")
	}
	return filepath.Join(os.TempDir(), "uclock")
}
