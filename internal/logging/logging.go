// Package logging builds the logrus logger shared by every component.
//
// The terminal belongs to the bubbletea program while the sheet is open, so
// structured output goes to a log file. Stderr is only added as a sink when it
// is not an interactive terminal (piped, redirected, CI), which keeps the log
// visible for `gridsheet 2>debug.log` without tearing the screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Options configures New.
type Options struct {
	Level  string
	Format string // "text" or "json"
	File   string // empty disables the file sink

	// Stderr is the console sink candidate. Nil means os.Stderr. Writers that
	// are not terminals always receive output.
	Stderr io.Writer

	Hooks []logrus.Hook
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a configured logger and a closer for its file sink.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)

	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
		closer = file
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	if !isInteractive(stderr) {
		writers = append(writers, stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	for _, hook := range opts.Hooks {
		logger.AddHook(hook)
	}
	return logger, closer, nil
}

// Discard returns a logger that drops everything. Tests and the CLI
// subcommands that never open the sheet use it.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fdWriter interface {
	Fd() uintptr
}

func isInteractive(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
