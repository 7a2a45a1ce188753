//go:build windows

package power

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/mescon/uclock/internal/logger"
)

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

var (
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = kernel32.NewProc("SetThreadExecutionState")
)

// execStateInhibitor holds SetThreadExecutionState flags for the
// process lifetime. The call is per-thread, so a dedicated
// OS-thread-locked goroutine owns both the set and the restore.
type execStateInhibitor struct {
	mu      sync.Mutex
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
}

func newInhibitor() Inhibitor {
	if procSetThreadExecutionState.Find() != nil {
		return &noopInhibitor{reason: "SetThreadExecutionState not exported by kernel32"}
	}
	return &execStateInhibitor{}
}

func (e *execStateInhibitor) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return nil
	}

	e.stopCh = make(chan struct{})
	e.doneCh = make(chan struct{})
	errCh := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(e.doneCh)

		ret, _, _ := procSetThreadExecutionState.Call(
			uintptr(esContinuous | esSystemRequired | esDisplayRequired))
		if ret == 0 {
			errCh <- fmt.Errorf("SetThreadExecutionState rejected the request")
			return
		}
		errCh <- nil

		<-e.stopCh

		// Restore default power management on the same thread.
		procSetThreadExecutionState.Call(uintptr(esContinuous))
	}()

	if err := <-errCh; err != nil {
		return err
	}
	e.started = true
	logger.Debugf("display and system sleep inhibited via SetThreadExecutionState")
	return nil
}

func (e *execStateInhibitor) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return
	}
	close(e.stopCh)
	<-e.doneCh
	e.started = false
	logger.Debugf("sleep inhibition released")
}
