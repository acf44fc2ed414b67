// Package logging builds the slog logger used by the simulator. Records go to
// the console and, when a file path is configured, are appended to a log file
// as well.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// TimeFormat is the timestamp layout used on every line.
const TimeFormat = "2006-01-02 15:04:05"

// Config configures a Logger. The zero value logs Info and above to stdout.
type Config struct {
	Level  string
	File   string
	Quiet  bool
	Output io.Writer
}

// Logger is a slog.Logger that owns its log file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// ParseLevel maps debug, info, warn and error to slog levels. An empty string
// means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New creates a logger. Close must be called to release the log file.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var writers []io.Writer
	if !cfg.Quiet {
		out := cfg.Output
		if out == nil {
			out = os.Stdout
		}
		writers = append(writers, out)
	}

	var file *os.File
	if cfg.File != "" {
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
	}

	var w io.Writer = io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceTime,
	})

	return &Logger{Logger: slog.New(handler), file: file}, nil
}

func replaceTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		return slog.String(slog.TimeKey, a.Value.Time().Format(TimeFormat))
	}
	return a
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}
