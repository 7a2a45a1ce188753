package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"
)

// View composes the whole window into an off-screen frame and hands
// it to the renderer in one piece. Partial draws are never visible:
// there is no separate background erase, and a frame is either the
// previous one or the next one.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	f := newFrame(m.width, m.height)
	l := m.layout

	row := l.Top
	f.blit(row, renderText(m.clockText, m.fontClock, m.width))
	row += l.ClockFontSize + l.UptimeFontSize // clock line plus blank spacer

	f.blit(row, renderText(m.cfg.UptimeLabel, m.fontUptime, m.width))
	row += l.UptimeFontSize

	f.blit(row, renderText(m.uptimeText, m.fontUptime, m.width))

	return f.String()
}

// frame is the off-screen row buffer for one paint. Scoped to a
// single View call; nothing escapes it but the final string.
type frame struct {
	width int
	rows  []string
}

func newFrame(width, height int) *frame {
	return &frame{width: width, rows: make([]string, height)}
}

// blit centers each line horizontally and writes it at top, clipping
// rows that fall outside the buffer.
func (f *frame) blit(top int, lines []string) {
	for i, line := range lines {
		r := top + i
		if r < 0 || r >= len(f.rows) {
			continue
		}
		f.rows[r] = lipgloss.PlaceHorizontal(f.width, lipgloss.Center, line)
	}
}

// String flushes the buffer as one string, the single copy to the
// visible surface.
func (f *frame) String() string {
	return strings.Join(f.rows, "\n")
}

// renderText rasterizes text in the given font, stepping down the
// ladder when the result is wider than the window. The plain fallback
// always fits the buffer even if the terminal clips it, which retires
// the fixed-width truncation defect of tiny windows silently eating
// long day counts.
func renderText(text string, font Font, maxWidth int) []string {
	if text == "" {
		return nil
	}
	if font.Name != "plain" {
		if rows, ok := renderFigure(text, font, maxWidth); ok {
			return rows
		}
		for _, smaller := range smallerThan(font) {
			if smaller.Name == "plain" {
				break
			}
			if rows, ok := renderFigure(text, smaller, maxWidth); ok {
				return rows
			}
		}
	}
	return []string{text}
}

// renderFigure rasterizes one FIGlet line and reports whether it fits
// the window width.
func renderFigure(text string, font Font, maxWidth int) ([]string, bool) {
	rows := figure.NewFigure(text, font.Name, false).Slicify()
	if len(rows) == 0 {
		return nil, false
	}
	for _, row := range rows {
		if lipgloss.Width(row) > maxWidth {
			return nil, false
		}
	}
	return rows, true
}
