//go:build linux

package power

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/mescon/uclock/internal/logger"
)

// systemdInhibitor holds a systemd-inhibit lock for the process
// lifetime by parenting a long sleep under it.
type systemdInhibitor struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func newInhibitor() Inhibitor {
	if _, err := exec.LookPath("systemd-inhibit"); err != nil {
		return &noopInhibitor{reason: "systemd-inhibit not found"}
	}
	return &systemdInhibitor{}
}

func (s *systemdInhibitor) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd != nil {
		return nil
	}

	cmd := exec.Command("systemd-inhibit",
		"--what=idle:sleep:handle-lid-switch",
		"--who=uclock",
		"--why=Uptime clock display is running",
		"--mode=block",
		"sleep", "infinity")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting systemd-inhibit: %w", err)
	}
	s.cmd = cmd
	logger.Debugf("sleep inhibited via systemd-inhibit (pid %d)", cmd.Process.Pid)
	return nil
}

func (s *systemdInhibitor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil {
		return
	}
	_ = s.cmd.Process.Kill()
	_ = s.cmd.Wait()
	s.cmd = nil
	logger.Debugf("sleep inhibition released")
}
