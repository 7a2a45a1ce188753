package ui

import (
	"testing"

	"github.com/mescon/uclock/internal/config"
)

// =============================================================================
// computeLayout tests
// =============================================================================

func TestComputeLayout_Ratios(t *testing.T) {
	l := computeLayout(48, config.Default())

	if l.ClockFontSize != 6 {
		t.Errorf("ClockFontSize = %d, want height/8 = 6", l.ClockFontSize)
	}
	if l.UptimeFontSize != 4 {
		t.Errorf("UptimeFontSize = %d, want height/12 = 4", l.UptimeFontSize)
	}
	if l.BlockHeight != 6+3*4 {
		t.Errorf("BlockHeight = %d, want clock + 3*uptime = 18", l.BlockHeight)
	}
	if l.Top != (48-18)/2 {
		t.Errorf("Top = %d, want (48-18)/2 = 15", l.Top)
	}
}

func TestComputeLayout_Deterministic(t *testing.T) {
	cfg := config.Default()
	for h := 0; h <= 200; h += 7 {
		if computeLayout(h, cfg) != computeLayout(h, cfg) {
			t.Fatalf("layout at height %d not deterministic", h)
		}
	}
}

func TestComputeLayout_TinyWindow(t *testing.T) {
	l := computeLayout(3, config.Default())

	if l.ClockFontSize != 0 || l.UptimeFontSize != 0 {
		t.Errorf("font sizes at height 3 = %d/%d, want 0/0", l.ClockFontSize, l.UptimeFontSize)
	}
	if l.Top < 0 {
		t.Errorf("Top = %d, must never be negative", l.Top)
	}
}

func TestComputeLayout_BlockFitsTypicalHeights(t *testing.T) {
	cfg := config.Default()
	for h := 10; h <= 300; h++ {
		l := computeLayout(h, cfg)
		if l.Top+l.BlockHeight > h {
			t.Fatalf("block overflows window at height %d: top %d + block %d", h, l.Top, l.BlockHeight)
		}
	}
}

// =============================================================================
// Font ladder tests
// =============================================================================

func TestFontFor_Ladder(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{0, "plain"},
		{1, "plain"},
		{3, "plain"},
		{4, "mini"},
		{5, "small"},
		{6, "standard"},
		{7, "standard"},
		{8, "big"},
		{40, "big"},
	}
	for _, tt := range tests {
		if got := fontFor(tt.size); got.Name != tt.want {
			t.Errorf("fontFor(%d) = %q, want %q", tt.size, got.Name, tt.want)
		}
	}
}

func TestFontFor_MonotonicInHeight(t *testing.T) {
	prev := 0
	for size := 0; size <= 40; size++ {
		h := fontFor(size).Height
		if h < prev {
			t.Fatalf("font height shrank from %d to %d as size grew to %d", prev, h, size)
		}
		prev = h
	}
}

func TestFontFor_NeverExceedsSlot(t *testing.T) {
	for size := 1; size <= 40; size++ {
		if f := fontFor(size); f.Height > size {
			t.Errorf("fontFor(%d) = %+v taller than its slot", size, f)
		}
	}
}

func TestSmallerThan_EndsAtPlain(t *testing.T) {
	steps := smallerThan(Font{Name: "big", Height: 8})

	if len(steps) == 0 || steps[len(steps)-1].Name != "plain" {
		t.Fatalf("smallerThan(big) = %+v, must end at the plain fallback", steps)
	}
	for i := 1; i < len(steps); i++ {
		if steps[i].Height >= steps[i-1].Height {
			t.Errorf("ladder not strictly descending: %+v", steps)
		}
	}
}
