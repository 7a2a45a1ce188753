// Package uptime samples the host's elapsed running time and formats
// it for display. The tick source is monotonic milliseconds since
// system start; the decomposition into days/hours/minutes/seconds is
// a fixed divmod cascade so displayed values are bit-for-bit
// reproducible from a given tick count.
package uptime

import "fmt"

// Unit conversions in milliseconds.
const (
	MsecPerSec = 1000
	MsecPerMin = MsecPerSec * 60
	MsecPerHr  = MsecPerMin * 60
	MsecPerDay = MsecPerHr * 24
)

// Sample is a decomposed uptime reading. Ephemeral: produced for one
// display tick and discarded.
type Sample struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose splits a millisecond tick count into display units.
// The remainder is threaded through each step, largest unit first.
func Decompose(ticks int64) Sample {
	var s Sample
	s.Days = ticks / MsecPerDay
	ticks %= MsecPerDay
	s.Hours = ticks / MsecPerHr
	ticks %= MsecPerHr
	s.Minutes = ticks / MsecPerMin
	ticks %= MsecPerMin
	s.Seconds = ticks / MsecPerSec
	return s
}

// String renders the sample in the canonical display format.
// No zero padding; the day count grows without truncation. A machine
// that has been up more than 999 days earns the extra column.
func (s Sample) String() string {
	return fmt.Sprintf("%d d, %d hr, %d min, %d sec",
		s.Days, s.Hours, s.Minutes, s.Seconds)
}

// Sampler binds a tick source and produces formatted uptime readings.
type Sampler struct {
	source Source
}

// NewSampler probes the platform tick source. Source unavailability
// is a construction-time failure; a constructed Sampler never fails
// to decompose, only to read.
func NewSampler() (*Sampler, error) {
	src, err := newSource()
	if err != nil {
		return nil, fmt.Errorf("probing uptime source: %w", err)
	}
	return &Sampler{source: src}, nil
}

// NewSamplerWith creates a Sampler over an explicit source. Used by
// tests and by callers that already hold a probed source.
func NewSamplerWith(src Source) *Sampler {
	return &Sampler{source: src}
}

// Caps reports the capability flags of the underlying source.
func (s *Sampler) Caps() Caps {
	return s.source.Caps()
}

// Sample reads the tick source and decomposes the result.
func (s *Sampler) Sample() (Sample, error) {
	ticks, err := s.source.Millis()
	if err != nil {
		return Sample{}, err
	}
	return Decompose(ticks), nil
}

// Text returns the formatted uptime string for the current reading.
func (s *Sampler) Text() (string, error) {
	sample, err := s.Sample()
	if err != nil {
		return "", err
	}
	return sample.String(), nil
}
