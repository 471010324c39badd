// Package table lays out plain-text columns for command-line listings.
package table

import (
	"strings"

	"github.com/atomicstack/course-sidebar/internal/catalog"
	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format returns the rows padded according to the widest entry in each column.
// Rows may be ragged; missing cells count as empty. Trailing padding is
// dropped so the last column never ends in spaces.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := ansi.StringWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// CatalogRows lists every catalog node in render order as
// title (indented by depth), id, and content locator, under a header row.
func CatalogRows(cat *catalog.Catalog) [][]string {
	rows := [][]string{{"TITLE", "ID", "CONTENT"}}
	cat.Walk(func(node *catalog.Node, depth int) bool {
		title := strings.Repeat("  ", depth)
		if node.Icon != "" {
			title += node.Icon + " "
		}
		title += node.Title
		locator := node.ContentURL
		if locator == "" && node.IsLeaf() {
			locator = "-"
		}
		rows = append(rows, []string{title, node.ID, locator})
		return true
	})
	return rows
}
