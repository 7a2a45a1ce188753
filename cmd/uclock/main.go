package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mescon/uclock/internal/clock"
	"github.com/mescon/uclock/internal/config"
	"github.com/mescon/uclock/internal/logger"
	"github.com/mescon/uclock/internal/power"
	"github.com/mescon/uclock/internal/ui"
	"github.com/mescon/uclock/internal/uptime"
)

// uclock takes no flags and reads no environment: run it and the
// window is the whole interface. Esc or Ctrl+W closes it.
func main() {
	cfg := config.Default()

	logger.Init(cfg.LogDir)
	logger.SetLevel(cfg.LogLevel)

	logger.Infof("========================================")
	logger.Infof("Starting uclock %s", config.Version)
	logger.Infof("========================================")

	sampler, err := uptime.NewSampler()
	if err != nil {
		logger.Errorf("No uptime source: %v", err)
		logger.Sync()
		fmt.Fprintf(os.Stderr, "uclock: no uptime source: %v\n", err)
		os.Exit(1)
	}
	if sampler.Caps().Millis64 {
		logger.Infof("Uptime source: 64-bit millisecond counter")
	} else {
		logger.Warnf("Uptime source: 32-bit counter, wraps after ~49.7 days of uptime")
	}

	// Block screen blanking and sleep timeouts for as long as we run.
	// Failure is logged and ignored: the clock is still useful.
	inhibitor := power.New()
	if err := inhibitor.Start(); err != nil {
		logger.Warnf("Could not inhibit sleep: %v", err)
	}

	model := ui.New(cfg, sampler, clock.NewRealClock())
	_, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()

	// Restore default power management before reporting anything.
	inhibitor.Stop()

	if runErr != nil {
		logger.Errorf("Window loop failed: %v", runErr)
		logger.Sync()
		fmt.Fprintf(os.Stderr, "uclock: %v\n", runErr)
		os.Exit(1)
	}

	logger.Infof("Exiting normally")
	logger.Sync()
}
