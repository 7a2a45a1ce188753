package ui

import (
	"time"

	"github.com/mescon/uclock/internal/clock"
)

// syncDeadline caps the boundary wait. The poll normally lands within
// one second; on a badly loaded host where every wake overshoots the
// tolerance window, an unaligned first refresh beats waiting forever.
const syncDeadline = 2 * time.Second

// waitForSecondBoundary polls the wall clock in short sleeps until
// the sub-second component is within tolerance of a whole second, so
// the first refresh lands where the seconds digit actually changes.
// Host timer granularity makes a single computed sleep unreliable at
// this scale; bounded polling trades a brief CPU burst for accuracy.
func waitForSecondBoundary(clk clock.Clock, tolerance, step time.Duration) {
	deadline := clk.Now().Add(syncDeadline)
	for {
		now := clk.Now()
		if now.Sub(now.Truncate(time.Second)) <= tolerance {
			return
		}
		if !now.Before(deadline) {
			return
		}
		clk.Sleep(step)
	}
}
