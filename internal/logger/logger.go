// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package logger provides a thin wrapper around log/slog used throughout wxpeek.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is a type wrapper for the Go stdlib slog.Logger
type Logger struct {
	*slog.Logger
}

// New returns a new Logger writing to STDERR with the given log level
func New(level slog.Level) *Logger {
	return NewLogger(level, os.Stderr)
}

// NewLogger returns a new Logger writing to the given io.Writer with the given log level
func NewLogger(level slog.Level, output io.Writer) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))}
}

// Err returns a slog.Attr for the given error
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
