package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/surfaces/internal/backend"
	"github.com/atomicstack/surfaces/internal/logging/events"
	"github.com/atomicstack/surfaces/internal/model"
	"github.com/atomicstack/surfaces/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	SeedPath     string
	PageSize     int
	PageInterval time.Duration
	OpenOnStart  bool
	Author       string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Stop(err) }()
	m, feed, err := build(cfg)
	if err != nil {
		return err
	}
	defer feed.Stop()
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// build loads the seed and wires the store, feed and UI model together.
func build(cfg Config) (*ui.Model, *backend.Feed, error) {
	seed, err := model.LoadSeed(cfg.SeedPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load seed: %w", err)
	}
	store := model.NewStore(cfg.Author, seed)
	feed := backend.NewFeed(store)
	m := ui.NewModel(store, feed, ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		OpenOnStart:  cfg.OpenOnStart,
		PageSize:     cfg.PageSize,
		PageInterval: cfg.PageInterval,
		Author:       store.Author(),
	})
	return m, feed, nil
}
