//go:build !windows && !darwin && !linux

package power

func newInhibitor() Inhibitor {
	return &noopInhibitor{reason: "no inhibitor for this platform"}
}
