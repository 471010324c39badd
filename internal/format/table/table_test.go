package table

import (
	"strings"
	"testing"

	"github.com/atomicstack/course-sidebar/internal/catalog"
	"github.com/google/go-cmp/cmp"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"a", "1", "x"},
		{"bbb", "22"},
		{"çç", "333", "y"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"a      1  x",
		"bbb   22",
		"çç   333  y",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("format mismatch (-want +got):\n%s", diff)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestCatalogRows(t *testing.T) {
	rows := CatalogRows(catalog.Default())
	if len(rows) != catalog.Default().Len()+1 {
		t.Fatalf("expected header plus %d rows, got %d", catalog.Default().Len(), len(rows))
	}
	if diff := cmp.Diff([]string{"TITLE", "ID", "CONTENT"}, rows[0]); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"λ Programação", "programacao", ""}, rows[1]); diff != "" {
		t.Fatalf("first row mismatch (-want +got):\n%s", diff)
	}
	react, _ := catalog.Default().Find("react")
	if diff := cmp.Diff([]string{"    React", "react", react.ContentURL}, rows[3]); diff != "" {
		t.Fatalf("react row mismatch (-want +got):\n%s", diff)
	}
	lines := Format(rows, nil)
	var proto string
	for _, line := range lines {
		if strings.Contains(line, "prototipagem") {
			proto = line
		}
	}
	if !strings.HasSuffix(proto, "-") {
		t.Fatalf("expected a leaf without content to show '-', got %q", proto)
	}
}
