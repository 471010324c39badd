package state

import (
	"testing"

	"github.com/atomicstack/course-sidebar/internal/catalog"
	"github.com/atomicstack/course-sidebar/internal/tree"
)

func TestSetFilterJumpsAndRestores(t *testing.T) {
	s := newTestSidebar("one", "two", "three")
	s.Cursor = 2
	s.SetFilter("two", len("two"))

	if s.Filter != "two" || s.FilterCursor != len("two") {
		t.Fatalf("unexpected filter state %q/%d", s.Filter, s.FilterCursor)
	}
	if s.Cursor != 1 {
		t.Fatalf("expected cursor on 'two', got %d", s.Cursor)
	}
	if len(s.Rows) != 3 {
		t.Fatalf("expected rows to stay visible, got %d", len(s.Rows))
	}

	s.SetFilter("", 0)
	if s.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", s.Cursor)
	}
	if s.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", s.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	s := newTestSidebar("alpha")

	if !s.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if s.Filter != "ab" || s.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", s.Filter, s.FilterCursor)
	}

	s.FilterCursor = 1
	if !s.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if s.Filter != "azb" || s.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", s.Filter, s.FilterCursor)
	}

	if !s.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if s.Filter != "ab" || s.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", s.Filter, s.FilterCursor)
	}

	s.SetFilter("abc def", len("abc def"))
	if !s.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if s.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", s.Filter)
	}

	s.SetFilter("abc", 0)
	if s.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if s.InsertFilterText("") {
		t.Fatal("expected empty insert to be ignored")
	}
}

func TestClearFilter(t *testing.T) {
	s := newTestSidebar("one", "two")
	if s.ClearFilter() {
		t.Fatal("expected nothing to clear")
	}
	s.InsertFilterText("tw")
	if !s.ClearFilter() || s.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", s.Filter)
	}
	if s.Cursor != 0 {
		t.Fatalf("expected cursor restored to 0, got %d", s.Cursor)
	}
}

func TestBestMatchIndex(t *testing.T) {
	rows := []tree.Row{
		{Node: &catalog.Node{ID: "one", Title: "First"}},
		{Node: &catalog.Node{ID: "two", Title: "Second"}},
		{Node: &catalog.Node{ID: "three", Title: "Third"}},
		{Node: &catalog.Node{ID: "programacao", Title: "Programação"}},
	}
	cases := map[string]int{
		"":            0,
		"second":      1,
		"th":          2,
		"thr":         2,
		"wo":          1,
		"programacao": 3,
		"ção":         3,
		"fst":         0,
		"zzz":         0,
	}
	for query, want := range cases {
		if got := BestMatchIndex(rows, query); got != want {
			t.Fatalf("query %q: expected %d, got %d", query, want, got)
		}
	}
	if BestMatchIndex(nil, "x") != -1 {
		t.Fatal("expected -1 for no rows")
	}
}
