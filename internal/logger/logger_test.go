package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// =============================================================================
// Level filtering tests
// =============================================================================

func TestSetLevel_FiltersBelow(t *testing.T) {
	core, logs := observer.New(level)
	InitForTest(core)

	SetLevel("info")
	Debugf("hidden %d", 1)
	Infof("shown %d", 2)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Message != "shown 2" {
		t.Errorf("entry = %q, want %q", entries[0].Message, "shown 2")
	}
}

func TestSetLevel_Debug(t *testing.T) {
	core, logs := observer.New(level)
	InitForTest(core)

	SetLevel("debug")
	Debugf("now visible")

	if logs.Len() != 1 {
		t.Errorf("debug entry should pass at debug level, got %d entries", logs.Len())
	}
	SetLevel("info")
}

func TestSetLevel_UnknownDefaultsToInfo(t *testing.T) {
	core, logs := observer.New(level)
	InitForTest(core)

	SetLevel("chatty")
	Debugf("still hidden")
	Warnf("still shown")

	if logs.Len() != 1 {
		t.Errorf("unknown level should behave as info, got %d entries", logs.Len())
	}
	SetLevel("info")
}

// =============================================================================
// Uninitialized state tests
// =============================================================================

func TestLog_BeforeInit_DoesNotPanic(t *testing.T) {
	mu.Lock()
	saved := sugar
	sugar = nil
	mu.Unlock()
	defer func() {
		mu.Lock()
		sugar = saved
		mu.Unlock()
	}()

	// The TUI may emit log calls before main wires the file sink.
	Infof("dropped")
	Errorf("dropped %v", os.ErrNotExist)
	Sync()
}

// =============================================================================
// File sink tests
// =============================================================================

func TestInit_WritesToLogDir(t *testing.T) {
	dir := t.TempDir()
	Init(dir)
	defer func() {
		mu.Lock()
		sugar = nil
		fileLogger = nil
		mu.Unlock()
	}()

	if GetLogDir() != dir {
		t.Errorf("GetLogDir() = %q, want %q", GetLogDir(), dir)
	}

	Infof("hello from test")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "uclock.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty after Infof + Sync")
	}
}

func TestLevelMapping(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		SetLevel(tt.name)
		if level.Level() != tt.want {
			t.Errorf("SetLevel(%q): level = %v, want %v", tt.name, level.Level(), tt.want)
		}
	}
	SetLevel("info")
}
