//go:build darwin

package uptime

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// sysctlSource derives uptime from kern.boottime. Unlike the mach
// monotonic clock this keeps counting across system sleep, matching
// what a technician reading the display expects "uptime" to mean.
type sysctlSource struct{}

func newSource() (Source, error) {
	src := &sysctlSource{}
	if _, err := src.Millis(); err != nil {
		return nil, err
	}
	return src, nil
}

func (s *sysctlSource) Millis() (int64, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0, fmt.Errorf("sysctl kern.boottime: %w", err)
	}
	boot := time.Unix(tv.Sec, int64(tv.Usec)*1000)
	return time.Since(boot).Milliseconds(), nil
}

func (s *sysctlSource) Caps() Caps {
	return Caps{Millis64: true}
}
