package power

import "testing"

// =============================================================================
// Inhibitor contract tests
// =============================================================================

func TestNew_ReturnsInhibitor(t *testing.T) {
	if New() == nil {
		t.Fatal("New() should never return nil")
	}
}

func TestNoop_StartStop(t *testing.T) {
	n := &noopInhibitor{reason: "test"}

	if err := n.Start(); err != nil {
		t.Errorf("noop Start() = %v, want nil", err)
	}
	n.Stop()
}

func TestNoop_StopWithoutStart(t *testing.T) {
	n := &noopInhibitor{reason: "test"}

	// Teardown calls Stop unconditionally, even if Start never ran.
	n.Stop()
	n.Stop()
}

func TestNew_StopIdempotent(t *testing.T) {
	// Stop before Start, and repeated Stop, must be safe on every
	// platform implementation.
	inh := New()
	inh.Stop()
	inh.Stop()
}
