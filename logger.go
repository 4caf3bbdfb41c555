package ditherpunk

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger sets the logger used by the package. By default nothing is
// logged. Passing nil restores the silent default. Safe for concurrent use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
