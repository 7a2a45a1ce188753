package testutil

import (
	"testing"
	"time"
)

func TestMockClock_SleepAdvancesTime(t *testing.T) {
	start := time.Date(2023, 3, 30, 12, 0, 0, 0, time.UTC)
	clk := NewMockClockAt(start)

	clk.Sleep(2 * time.Millisecond)
	clk.Sleep(2 * time.Millisecond)

	if want := start.Add(4 * time.Millisecond); !clk.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", clk.Now(), want)
	}
	if clk.SleepCount() != 2 {
		t.Errorf("SleepCount() = %d, want 2", clk.SleepCount())
	}
	if clk.Slept() != 4*time.Millisecond {
		t.Errorf("Slept() = %v, want 4ms", clk.Slept())
	}
}

func TestMockClock_SetNow(t *testing.T) {
	clk := NewMockClock()
	at := time.Date(2023, 3, 30, 23, 59, 59, 0, time.UTC)

	clk.SetNow(at)

	if !clk.Now().Equal(at) {
		t.Errorf("Now() = %v after SetNow(%v)", clk.Now(), at)
	}
}
