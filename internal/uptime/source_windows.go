//go:build windows

package uptime

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// tickSource reads the kernel's millisecond tick counter.
// GetTickCount64 is preferred; hosts that predate it fall back to the
// 32-bit GetTickCount, which wraps at ~49.7 days. The choice is made
// once at construction and recorded in Caps.
type tickSource struct {
	proc *windows.LazyProc
	caps Caps
}

var (
	kernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procGetTickCount64 = kernel32.NewProc("GetTickCount64")
	procGetTickCount   = kernel32.NewProc("GetTickCount")
)

func newSource() (Source, error) {
	if procGetTickCount64.Find() == nil {
		return &tickSource{proc: procGetTickCount64, caps: Caps{Millis64: true}}, nil
	}
	if procGetTickCount.Find() == nil {
		return &tickSource{proc: procGetTickCount, caps: Caps{Millis64: false}}, nil
	}
	return nil, fmt.Errorf("kernel32 exposes neither GetTickCount64 nor GetTickCount")
}

func (s *tickSource) Millis() (int64, error) {
	// The tick count is returned directly in the first result; the
	// "error" is the nonzero errno convention and not meaningful here.
	ret, _, _ := s.proc.Call()
	if s.caps.Millis64 {
		return int64(ret), nil
	}
	return int64(uint32(ret)), nil
}

func (s *tickSource) Caps() Caps {
	return s.caps
}
