package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/broadlist/internal/config"
	"github.com/llehouerou/broadlist/internal/errmsg"
	"github.com/llehouerou/broadlist/internal/logging"
	"github.com/llehouerou/broadlist/internal/sample"
	"github.com/llehouerou/broadlist/internal/state"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, closeLog, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogSetup, err))
	}
	defer closeLog() //nolint:errcheck // nothing left to report to

	path, err := cfg.StorePath()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStoreOpen, err))
	}
	store, err := state.Open(path, logger)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpStoreOpen, path, err))
	}
	defer store.Close()

	m, err := sample.New(sample.Config{
		Store:           store,
		Spacing:         cfg.SpacingDecorator(),
		ScrollMargin:    cfg.ScrollMargin(),
		LastItemRefresh: cfg.LastItemRefresh(),
		Logger:          logger,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpItemsLoad, err))
	}
	defer m.Close()

	logger.Info("starting", "store", path)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if err := m.Err(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpRender, err))
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
