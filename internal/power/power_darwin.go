//go:build darwin

package power

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/mescon/uclock/internal/logger"
)

// caffeinateInhibitor holds a caffeinate child for the process
// lifetime: -d blocks display sleep, -i idle sleep, -s system sleep
// on AC power.
type caffeinateInhibitor struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func newInhibitor() Inhibitor {
	if _, err := exec.LookPath("caffeinate"); err != nil {
		return &noopInhibitor{reason: "caffeinate not found"}
	}
	return &caffeinateInhibitor{}
}

func (c *caffeinateInhibitor) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd != nil {
		return nil
	}

	cmd := exec.Command("caffeinate", "-dis", "-w", fmt.Sprint(os.Getpid()))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting caffeinate: %w", err)
	}
	c.cmd = cmd
	logger.Debugf("sleep inhibited via caffeinate (pid %d)", cmd.Process.Pid)
	return nil
}

func (c *caffeinateInhibitor) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd == nil {
		return
	}
	_ = c.cmd.Process.Kill()
	_ = c.cmd.Wait()
	c.cmd = nil
	logger.Debugf("sleep inhibition released")
}
