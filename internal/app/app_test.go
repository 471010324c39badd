package app

import (
	"errors"
	"testing"

	"github.com/atomicstack/course-sidebar/internal/catalog"
	"github.com/atomicstack/course-sidebar/internal/content"
	"github.com/atomicstack/course-sidebar/internal/testutil"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

func TestLoadCatalogDefaultsToBuiltin(t *testing.T) {
	cat, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Len() != catalog.Default().Len() {
		t.Fatalf("expected built-in catalog, got %d nodes", cat.Len())
	}
}

func TestLoadCatalogReportsInvalidFile(t *testing.T) {
	path := testutil.WriteFile(t, "broken.yaml", "menu:\n  - id: a\n")
	_, err := LoadCatalog(path)
	if !errors.Is(err, catalog.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestNewModelAppliesConfig(t *testing.T) {
	cfg := Config{
		ExclusiveDepth: 0,
		EmptyContent:   "blank",
		ContentStyle:   glamourstyles.NoTTYStyle,
		Width:          100,
		Height:         20,
	}
	m, err := NewModel(cfg, catalog.Default())
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if m.Pane().Kind != content.Placeholder {
		t.Fatalf("expected placeholder before any selection, got %s", m.Pane().Kind)
	}

	cfg.EmptyContent = "hidden"
	if _, err := NewModel(cfg, catalog.Default()); err == nil {
		t.Fatalf("expected error for unknown empty-content mode")
	}
}
