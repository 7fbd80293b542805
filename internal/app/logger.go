// SPDX-License-Identifier: MIT

package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger on w. verbose enables debug records;
// quiet keeps errors only and wins over verbose.
func NewLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
