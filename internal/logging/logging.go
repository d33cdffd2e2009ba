// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the file-backed structured logger.
//
// Stdout and stderr belong to the TUI, so everything worth keeping goes to a
// log file in the state directory. Nothing here is ever user-facing: clipboard
// and storage failures degrade silently in the UI, and the log is where those
// degradations leave a trace.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.Nop()
	closer io.Closer
)

// Init opens (or creates) parley.log in dir and installs it as the process
// logger. Level accepts zerolog level names; unknown names mean "info".
// Logging failures must never take the app down, so an unopenable log file
// just leaves the no-op logger installed.
func Init(dir, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "parley.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	closer = f
	logger = zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339
	return nil
}

// L returns the process logger.
func L() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return &logger
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
		closer = nil
		logger = zerolog.Nop()
	}
}
