//go:build linux

package uptime

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// procSource reads uptime from /proc/uptime: the first field is
// seconds since boot with two fractional digits.
type procSource struct {
	path string
}

func newSource() (Source, error) {
	src := &procSource{path: "/proc/uptime"}
	if _, err := src.Millis(); err != nil {
		return nil, err
	}
	return src, nil
}

func (s *procSource) Millis() (int64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", s.path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) < 1 {
		return 0, fmt.Errorf("unexpected format in %s", s.path)
	}

	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing uptime value: %w", err)
	}
	return int64(secs * MsecPerSec), nil
}

func (s *procSource) Caps() Caps {
	return Caps{Millis64: true}
}
