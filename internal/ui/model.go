// Package ui owns the clock window: the Bubble Tea model holding the
// displayed text, the Hidden/Syncing/Running refresh state machine,
// and the height-proportional layout. Exactly one goroutine (the
// program's update loop) touches the model; timers and the sync wait
// run as commands and report back as messages.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/mescon/uclock/internal/clock"
	"github.com/mescon/uclock/internal/config"
	"github.com/mescon/uclock/internal/logger"
)

// viewState tracks where the window is in its refresh lifecycle.
type viewState int

const (
	// StateHidden: no refresh scheduled. Initial and terminal state.
	StateHidden viewState = iota
	// StateSyncing: the second-boundary wait is in flight.
	StateSyncing
	// StateRunning: periodic refresh is live.
	StateRunning
)

func (s viewState) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateSyncing:
		return "syncing"
	case StateRunning:
		return "running"
	}
	return "unknown"
}

// UptimeSource supplies formatted uptime text. *uptime.Sampler
// satisfies it; tests substitute failing sources.
type UptimeSource interface {
	Text() (string, error)
}

// syncedMsg reports that the second-boundary wait finished.
// tickMsg is one firing of the periodic refresh. Both carry the
// refresh generation they belong to; messages from a cancelled
// generation are dropped rather than raced.
type (
	syncedMsg struct{ gen int }
	tickMsg   struct{ gen int }
)

// Model is the clock window state. One instance per window; the
// window identity and its state map one-to-one.
type Model struct {
	cfg     config.Settings
	clk     clock.Clock
	sampler UptimeSource
	keys    keyMap

	// formatClock renders the wall-clock row. A field so tests can
	// force zero-length output; defaults to the configured layout.
	formatClock func(time.Time) string

	state  viewState
	width  int
	height int
	layout Layout

	fontClock  Font
	fontUptime Font

	clockText  string
	uptimeText string

	refreshActive bool
	refreshGen    int
}

// New constructs the clock window model.
func New(cfg config.Settings, sampler UptimeSource, clk clock.Clock) *Model {
	m := &Model{
		cfg:        cfg,
		clk:        clk,
		sampler:    sampler,
		keys:       defaultKeyMap(),
		fontClock:  plainFont,
		fontUptime: plainFont,
	}
	m.formatClock = func(t time.Time) string {
		return t.Format(cfg.ClockLayout)
	}
	return m
}

// Init starts the show sequence: title, then the sync wait.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.cfg.Title),
		m.show(),
	)
}

// Update dispatches window events. Must return promptly: the only
// slow work (the sync wait) runs inside a command goroutine.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.hide()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Suspend):
			m.hide()
			return m, tea.Suspend
		}

	case tea.ResumeMsg:
		return m, m.show()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()

	case syncedMsg:
		if msg.gen != m.refreshGen || m.state != StateSyncing {
			return m, nil
		}
		m.state = StateRunning
		m.refresh()
		return m, m.startRefresh()

	case tickMsg:
		if msg.gen != m.refreshGen || !m.refreshActive {
			return m, nil
		}
		m.refresh()
		return m, m.scheduleTick()
	}

	return m, nil
}

// show drives Hidden → Syncing and kicks off the second-boundary
// wait. A no-op unless the window is currently hidden.
func (m *Model) show() tea.Cmd {
	if m.state != StateHidden {
		return nil
	}
	m.state = StateSyncing
	gen := m.refreshGen
	cfg := m.cfg
	clk := m.clk
	logger.Debugf("window shown, waiting for second boundary")
	return func() tea.Msg {
		waitForSecondBoundary(clk, cfg.SyncTolerance, cfg.SyncPollStep)
		return syncedMsg{gen: gen}
	}
}

// hide drives any state to Hidden and cancels the periodic refresh.
// Idempotent; also the teardown path.
func (m *Model) hide() {
	m.stopRefresh()
	if m.state != StateHidden {
		logger.Debugf("window hidden from state %s", m.state)
	}
	m.state = StateHidden
}

// startRefresh schedules the periodic refresh. Starting while already
// active is a no-op.
func (m *Model) startRefresh() tea.Cmd {
	if m.refreshActive {
		return nil
	}
	m.refreshActive = true
	return m.scheduleTick()
}

// stopRefresh cancels the periodic refresh. The generation bump
// orphans any in-flight tick or sync message so it is discarded on
// arrival. Safe to call repeatedly and when never started.
func (m *Model) stopRefresh() {
	m.refreshGen++
	m.refreshActive = false
}

// scheduleTick arms the next refresh, aligned to the interval
// boundary the sync wait established.
func (m *Model) scheduleTick() tea.Cmd {
	gen := m.refreshGen
	return tea.Every(m.cfg.RefreshInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// refresh pulls fresh wall-clock and uptime text. Either field keeps
// its previous value when formatting fails — stale but consistent,
// never blank or partial. The repaint happens on the next View, not
// here.
func (m *Model) refresh() {
	if text := m.formatClock(m.clk.Now()); text != "" {
		m.clockText = text
	}

	text, err := m.sampler.Text()
	if err != nil {
		logger.Debugf("uptime sample skipped: %v", err)
	} else if text != "" {
		m.uptimeText = text
	}
}

// applyLayout recomputes geometry and fonts from the current height.
// Text fields are untouched; resize never blanks the display.
func (m *Model) applyLayout() {
	m.layout = computeLayout(m.height, m.cfg)
	m.fontClock = fontFor(m.layout.ClockFontSize)
	m.fontUptime = fontFor(m.layout.UptimeFontSize)
}
