// Package trace is the optional diagnostics channel for wrapgen.
// It is a no-op unless enabled, and is never part of the functional
// contract of the generator.
package trace

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// Enable switches the package logger to a development zap logger.
// Called when --verbose is set or the config enables diagnostics.
func Enable() {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	logger = zapLogger.Sugar()
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}
