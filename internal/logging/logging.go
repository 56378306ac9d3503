// Package logging builds the slog logger used across the generator.
package logging

import (
	"io"
	"log/slog"
	"os"
)

const DebugEnv = "ENDPOINTGEN_DEBUG"

func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Enabled reports whether ENDPOINTGEN_DEBUG asks for debug output.
func Enabled() bool {
	return os.Getenv(DebugEnv) != ""
}

func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
