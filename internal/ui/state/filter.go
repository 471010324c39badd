package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/course-sidebar/internal/tree"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the jump-to query and moves the cursor onto the best
// matching visible row. Rows are never hidden; clearing the query puts the
// cursor back where it was before typing started.
func (s *Sidebar) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(s.Filter)
	s.Filter = query
	runes := []rune(s.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	s.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			s.LastCursor = s.Cursor
		}
		if idx := BestMatchIndex(s.Rows, trimmed); idx >= 0 {
			s.Cursor = idx
		}
		return
	}
	if prevTrimmed != "" {
		if s.LastCursor >= 0 && s.LastCursor < len(s.Rows) {
			s.Cursor = s.LastCursor
		}
		s.LastCursor = -1
	}
}

// ClearFilter drops the query. It reports whether there was one.
func (s *Sidebar) ClearFilter() bool {
	if s.Filter == "" {
		return false
	}
	s.SetFilter("", 0)
	return true
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (s *Sidebar) FilterCursorPos() int {
	runes := []rune(s.Filter)
	if s.FilterCursor < 0 {
		return 0
	}
	if s.FilterCursor > len(runes) {
		return len(runes)
	}
	return s.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (s *Sidebar) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (s *Sidebar) DeleteFilterRuneBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	s.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (s *Sidebar) DeleteFilterWordBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	s.SetFilter(string(updated), i)
	return true
}

// BestMatchIndex returns the row that best matches query. Exact matches win
// over title prefixes, then id prefixes, then substrings, then a fuzzy rank
// over the titles. It returns -1 only when there are no rows.
func BestMatchIndex(rows []tree.Row, query string) int {
	if len(rows) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row.Node.Title, trimmed) || strings.EqualFold(row.Node.ID, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Node.Title), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Node.ID), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.Contains(strings.ToLower(row.Node.ID), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.Contains(strings.ToLower(row.Node.Title), lower) {
			return i
		}
	}
	titles := make([]string, len(rows))
	for i, row := range rows {
		titles[i] = row.Node.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(rows) {
		return 0
	}
	return best.OriginalIndex
}
