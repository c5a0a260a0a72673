package stagedef

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger. Decode diagnostics (skipped
// records, failed alias reconciliation) are emitted through it.
// This must be called before any decode operations.
func SetLogger(l *zap.Logger) {
	logger = l
}
