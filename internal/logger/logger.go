// Package logger writes uclock's diagnostic log to a rotating file.
// The TUI owns the terminal, so nothing here ever touches stdout or
// stderr; before Init the package drops messages entirely. There is no
// user-visible error surface by design — the window keeps showing the
// last good values and the log exists only for post-hoc diagnosis.
package logger

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu         sync.Mutex
	sugar      *zap.SugaredLogger
	level      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	fileLogger *lumberjack.Logger
)

// SetLevel sets the minimum log level. Valid values: "debug", "info", "warn", "error"
func SetLevel(lvl string) {
	switch lvl {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "info":
		level.SetLevel(zapcore.InfoLevel)
	case "warn":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Init initializes the logger with the specified log directory.
// Called once at startup; the directory and file are created on the
// first write, and write failures are swallowed by the sink rather
// than surfaced to the program.
func Init(logDir string) {
	mu.Lock()
	defer mu.Unlock()

	fileLogger = &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "uclock.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(fileLogger),
		level,
	)
	sugar = zap.New(core).Sugar()
}

// GetLogDir returns the directory where log files are stored
func GetLogDir() string {
	mu.Lock()
	defer mu.Unlock()
	if fileLogger != nil {
		return filepath.Dir(fileLogger.Filename)
	}
	return ""
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if sugar != nil {
		_ = sugar.Sync()
	}
}

// Infof logs a formatted message at INFO level.
func Infof(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, v...)
	}
}

// Errorf logs a formatted message at ERROR level.
func Errorf(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, v...)
	}
}

// Debugf logs a formatted message at DEBUG level.
func Debugf(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(format, v...)
	}
}

// Warnf logs a formatted message at WARN level.
func Warnf(format string, v ...interface{}) {
	if l := current(); l != nil {
		l.Warnf(format, v...)
	}
}

func current() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return sugar
}

// InitForTest points the logger at an in-memory core so tests can
// assert on observed entries without touching the filesystem.
func InitForTest(core zapcore.Core) {
	mu.Lock()
	defer mu.Unlock()
	sugar = zap.New(core).Sugar()
}
