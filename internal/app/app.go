package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/course-sidebar/internal/catalog"
	"github.com/atomicstack/course-sidebar/internal/content"
	"github.com/atomicstack/course-sidebar/internal/logging/events"
	"github.com/atomicstack/course-sidebar/internal/tree"
	"github.com/atomicstack/course-sidebar/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath    string
	Width          int
	Height         int
	SidebarWidth   int
	ExclusiveDepth int
	EmptyContent   string
	ContentStyle   string
	ShowFooter     bool
	Mouse          bool
}

// LoadCatalog returns the configured catalog, or the built-in one when no path
// is set.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	cat, source, err := catalog.LoadOrDefault(path)
	if err != nil {
		events.Catalog.Invalid(source, err)
		return nil, err
	}
	events.Catalog.Load(source, cat.Len())
	return cat, nil
}

// NewModel builds the UI model described by cfg.
func NewModel(cfg Config, cat *catalog.Catalog) (*ui.Model, error) {
	mode, err := content.ParseEmptyMode(cfg.EmptyContent)
	if err != nil {
		return nil, err
	}
	return ui.NewModel(ui.Options{
		Catalog:      cat,
		Policy:       tree.Policy{ExclusiveDepth: cfg.ExclusiveDepth},
		EmptyMode:    mode,
		ContentStyle: cfg.ContentStyle,
		SidebarWidth: cfg.SidebarWidth,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	cat, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	model, err := NewModel(cfg, cat)
	if err != nil {
		return err
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
