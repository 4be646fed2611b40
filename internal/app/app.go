package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/five82/gridsheet/internal/activity"
	"github.com/five82/gridsheet/internal/config"
	"github.com/five82/gridsheet/internal/logging"
	"github.com/five82/gridsheet/internal/prefs"
	"github.com/five82/gridsheet/internal/sheet"
	"github.com/five82/gridsheet/internal/ui"
)

// Options configure the Gridsheet application. Zero values defer to the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gridsheet/prefs.toml
	Theme      string
	LogLevel   string
	NoMouse    bool
}

// Run opens the sheet and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl := strings.TrimSpace(opts.LogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	feed := activity.NewFeed(activity.DefaultCapacity, logrus.InfoLevel)
	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Hooks:  []logrus.Hook{feed},
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	log := logger.WithField("session", uuid.NewString())

	s, err := sheet.Sample()
	if err != nil {
		return fmt.Errorf("load sample sheet: %w", err)
	}

	themeName := resolveTheme(opts.Theme, cfg.Theme, prefs.Load(opts.PrefsPath).Theme)
	log.WithFields(logrus.Fields{
		"rows":  s.Dimensions().Rows,
		"cols":  s.Dimensions().Cols,
		"theme": themeName,
	}).Info("session started")

	err = ui.Run(ui.Options{
		Context:       ctx,
		Sheet:         s,
		Logger:        log,
		Feed:          feed,
		ThemeName:     themeName,
		PrefsPath:     opts.PrefsPath,
		PixelsPerCell: cfg.PixelsPerCell,
		Mouse:         cfg.Mouse && !opts.NoMouse,
	})
	if isInterrupted(ctx, err) {
		err = nil
	}
	log.Info("session ended")
	return err
}

// resolveTheme picks the first non-empty theme: flag, config, then prefs.
func resolveTheme(candidates ...string) string {
	for _, name := range candidates {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return prefs.DefaultTheme
}

// isInterrupted reports whether err only says the program stopped because
// ctx was cancelled, which is a normal way to leave.
func isInterrupted(ctx context.Context, err error) bool {
	return err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled)
}
