package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// setupLogger points the arcade logger at path. The TUI owns the terminal,
// so without a file all log output is discarded.
func setupLogger(path, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var out io.Writer = io.Discard
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           lvl,
	})
	log.SetDefault(logger)
	return nil
}

func closeLogger() {
	if logFile != nil {
		//nolint:errcheck // Best-effort close on exit
		logFile.Close()
		logFile = nil
	}
}
