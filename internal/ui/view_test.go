package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestContentPanelIsBoxed(t *testing.T) {
	m := newTestModel(t)
	m.click("programacao", clickSourceKey)
	m.click("frontend", clickSourceKey)
	m.click("react", clickSourceKey)
	panel := ansi.Strip(m.renderContentPanel(50, 12))
	rows := strings.Split(panel, "\n")
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
	if !strings.HasPrefix(rows[0], "╭─ React ") || !strings.HasSuffix(rows[0], "╮") {
		t.Fatalf("unexpected top border %q", rows[0])
	}
	if !strings.HasPrefix(rows[11], "╰") {
		t.Fatalf("unexpected bottom border %q", rows[11])
	}
	for i, row := range rows {
		if w := ansi.StringWidth(row); w != 50 {
			t.Fatalf("row %d: expected width 50, got %d (%q)", i, w, row)
		}
	}
}

func TestContentPanelScrolls(t *testing.T) {
	m := newTestModel(t)
	m.paneLines = []string{"a", "b", "c", "d", "e", "f"}
	panel := ansi.Strip(m.renderContentPanel(30, 5))
	if !strings.Contains(panel, " 3/6 ") {
		t.Fatalf("expected scroll position in border, got:\n%s", panel)
	}
	m.contentOffset = 10
	panel = ansi.Strip(m.renderContentPanel(30, 5))
	if m.contentOffset != 3 || !strings.Contains(panel, " 6/6 ") {
		t.Fatalf("expected offset clamped to 3, got %d:\n%s", m.contentOffset, panel)
	}
}

func TestViewFitsTerminal(t *testing.T) {
	for _, width := range []int{120, 50} {
		m := newTestModel(t, func(o *Options) { o.Width, o.Height, o.ShowFooter = width, 20, true })
		view := ansi.Strip(m.View())
		rows := strings.Split(view, "\n")
		if len(rows) != 20 {
			t.Fatalf("width %d: expected 20 rows, got %d\n%s", width, len(rows), view)
		}
		if !strings.Contains(view, "select") {
			t.Fatalf("width %d: expected footer help, got:\n%s", width, view)
		}
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("abc", 5); got != "abc  " {
		t.Fatalf("expected padding, got %q", got)
	}
	if got := fitWidth("abcdef", 4); ansi.StringWidth(got) != 4 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncation with tail, got %q", got)
	}
	if got := fitWidth("abc", 0); got != "" {
		t.Fatalf("expected empty string for zero width, got %q", got)
	}
}
