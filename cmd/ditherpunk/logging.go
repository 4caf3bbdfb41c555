package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger logs warnings (everything with debug) to stderr and, when
// logFile is set, info and up as JSON to a rotated file.
func newLogger(debug bool, logFile string) (*zap.Logger, error) {
	console := zapcore.WarnLevel
	file := zapcore.InfoLevel
	if debug {
		console, file = zapcore.DebugLevel, zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			console,
		),
	}
	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			file,
		))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
