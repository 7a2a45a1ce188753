package uptime

// Source reads monotonic milliseconds elapsed since system start.
type Source interface {
	// Millis returns the current uptime in milliseconds. Read errors
	// are per-sample; callers keep the previous display value.
	Millis() (int64, error)
	// Caps reports the source's capability flags.
	Caps() Caps
}

// Caps describes what the platform tick counter can do. Probed once
// when the source is constructed and never re-probed.
type Caps struct {
	// Millis64 is true when the counter is 64 bits wide. The 32-bit
	// fallback wraps at ~49.7 days of uptime; that risk is accepted
	// only on hosts that predate the wide counter.
	Millis64 bool
}
