// Package log builds the process-wide slog logger: console always, plus a
// timestamped log file when a directory is configured.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

var logFile *os.File

// NewLogger returns a text-handler logger at Info level, or Debug when debug
// is set. When dir is non-empty the output is mirrored into
// dir/ghostcursor-<timestamp>.log.
func NewLogger(debug bool, dir string) (*slog.Logger, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stdout
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating log directory: %w", err)
		}
		name := filepath.Join(dir, fmt.Sprintf("ghostcursor-%s.log", time.Now().Format("2006-01-02-15-04-05")))
		f, err := os.Create(name)
		if err != nil {
			return nil, fmt.Errorf("error creating log file: %w", err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

// FlushAndClose closes the log file, if one was opened.
func FlushAndClose() {
	if logFile != nil {
		_ = logFile.Sync()
		_ = logFile.Close()
		logFile = nil
	}
}
