// Command leaflet is a terminal note-taking editor: a sidebar of pages next
// to a rich-text editor with a formatting toolbar.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/iw2rmb/leaflet"
	"github.com/iw2rmb/leaflet/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(config.NewFlagSet("leaflet"), args)
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Println(leaflet.Banner("leaflet"))
		return nil
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting",
		zap.String("version", leaflet.Version()),
		zap.String("config", cfg.File),
		zap.Int("pages", len(cfg.Pages)),
	)

	m, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}

// newLogger writes JSON logs to the configured file. The terminal belongs to
// the UI, so without a file logging is disabled.
func newLogger(c config.LogConfig) (*zap.Logger, error) {
	if c.File == "" {
		return zap.NewNop(), nil
	}
	lvl, err := c.ZapLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{c.File}
	zc.ErrorOutputPaths = []string{c.File}
	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
