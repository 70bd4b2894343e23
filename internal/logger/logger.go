// SPDX-License-Identifier: MIT

// Package logger builds the zap loggers used by the command-line tools.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func rotator(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

func fileCore(path string, level zapcore.Level) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.MessageKey = "message"
	cfg.LevelKey = "level"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(rotator(path)), level)
}

func level(debug bool) zapcore.Level {
	if debug {
		return zap.DebugLevel
	}

	return zap.InfoLevel
}

// New tees a human-readable console logger on stderr with a rotating JSON
// file at path. An empty path logs to the console only.
func New(path string, debug bool) *zap.Logger {
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level(debug),
	)
	core := console
	if path != "" {
		core = zapcore.NewTee(fileCore(path, level(debug)), console)
	}

	return zap.New(core, zap.AddCaller())
}

// NewFileOnly writes only to the rotating file at path, leaving the terminal
// to a full-screen UI. An empty path yields a no-op logger.
func NewFileOnly(path string, debug bool) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}

	return zap.New(fileCore(path, level(debug)), zap.AddCaller())
}
