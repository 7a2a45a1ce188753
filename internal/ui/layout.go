package ui

import "github.com/mescon/uclock/internal/config"

// Layout is the derived geometry for one window height. Width never
// affects it; lines are centered horizontally at paint time.
type Layout struct {
	// ClockFontSize and UptimeFontSize are row heights derived from
	// the window height (height/8 and height/12).
	ClockFontSize  int
	UptimeFontSize int

	// BlockHeight is the full display block: one clock line plus a
	// blank spacer, the label, and the value, the latter three all at
	// UptimeFontSize.
	BlockHeight int

	// Top is the first row of the block, centering it vertically.
	Top int
}

// computeLayout derives geometry from the client height. Pure; calling
// it twice with the same height yields identical geometry.
func computeLayout(height int, cfg config.Settings) Layout {
	l := Layout{
		ClockFontSize:  height / cfg.ClockFontDivisor,
		UptimeFontSize: height / cfg.UptimeFontDivisor,
	}
	l.BlockHeight = l.ClockFontSize + 3*l.UptimeFontSize
	l.Top = (height - l.BlockHeight) / 2
	if l.Top < 0 {
		l.Top = 0
	}
	return l
}

// Font names a FIGlet rendering and its nominal character height in
// terminal rows. Fonts are plain values: installing a replacement is
// one assignment, so a paint in progress never observes a torn font.
type Font struct {
	Name   string
	Height int
}

// plainFont is the floor of the ladder: a single unadorned text row
// for windows too short for any FIGlet rendering.
var plainFont = Font{Name: "plain", Height: 1}

// fontLadder is ordered largest first. Heights are the fixed character
// heights of the bundled FIGlet fonts.
var fontLadder = []Font{
	{Name: "big", Height: 8},
	{Name: "standard", Height: 6},
	{Name: "small", Height: 5},
	{Name: "mini", Height: 4},
}

// fontFor picks the largest font fitting the computed row height.
func fontFor(size int) Font {
	for _, f := range fontLadder {
		if f.Height <= size {
			return f
		}
	}
	return plainFont
}

// smallerThan returns the ladder entries strictly below f, ending at
// the plain fallback. Used to step down when a rendering is too wide
// for the window.
func smallerThan(f Font) []Font {
	out := make([]Font, 0, len(fontLadder)+1)
	for _, candidate := range fontLadder {
		if candidate.Height < f.Height {
			out = append(out, candidate)
		}
	}
	return append(out, plainFont)
}
