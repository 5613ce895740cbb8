// Package logging builds the charmbracelet loggers used by the app.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// ParseLevel maps a config level name to a log level. Unknown names
// resolve to warn.
func ParseLevel(name string) clog.Level {
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return clog.WarnLevel
	}
	return lvl
}

// New returns a logger writing to w.
func New(w io.Writer, prefix, level string) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		Prefix:          prefix,
		Level:           ParseLevel(level),
		ReportTimestamp: true,
	})
}

// ForTUI returns a logger that never writes to the terminal, which the
// alternate screen owns. With an empty path logs are discarded. The
// returned close func releases the file.
func ForTUI(path, level string) (*clog.Logger, func() error, error) {
	if path == "" {
		return New(io.Discard, "edgefinder", level), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, "edgefinder", level), f.Close, nil
}

// ForCLI returns a logger on stderr.
func ForCLI(level string) *clog.Logger {
	return New(os.Stderr, "edgefinder", level)
}
