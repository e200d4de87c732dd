// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger provides the shared structured logger. Output goes to stderr
// as JSON lines so the digest page on stdout-adjacent paths stays clean and
// cron captures are machine-readable.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

// Get returns the process-wide logger, creating it on first use.
func Get() *slog.Logger {
	once.Do(func() {
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	})
	return log
}

// With returns the shared logger with extra attributes attached.
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}
