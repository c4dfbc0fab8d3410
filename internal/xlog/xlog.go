// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package xlog is the thin zerolog wrapper shared by the engine's
// packages. It defaults to silence; a caller opts in to output via
// SetOutput.
package xlog

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard).With().Timestamp().Logger()
)

// SetOutput redirects the package logger to w, e.g. os.Stderr under a
// verbose flag. Passing io.Discard restores silence.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(w).With().Timestamp().Logger()
}

// L returns the current shared logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &logger
}
