package state

import "github.com/atomicstack/course-sidebar/internal/tree"

// Sidebar tracks the visible rows of the course tree together with the
// keyboard cursor, the scroll offset and the jump-to filter.
type Sidebar struct {
	Rows           []tree.Row
	Cursor         int
	ViewportOffset int
	Filter         string
	FilterCursor   int
	LastCursor     int
}

// NewSidebar constructs a Sidebar showing rows with the cursor on the first row.
func NewSidebar(rows []tree.Row) *Sidebar {
	s := &Sidebar{LastCursor: -1}
	s.SetRows(rows, "")
	return s
}

// SetRows replaces the visible rows. The cursor follows keepID when that node
// is still visible, otherwise it is clamped into range.
func (s *Sidebar) SetRows(rows []tree.Row, keepID string) {
	s.Rows = rows
	if keepID != "" {
		if idx := tree.IndexOf(rows, keepID); idx >= 0 {
			s.Cursor = idx
			return
		}
	}
	s.clampCursor()
}

func (s *Sidebar) clampCursor() {
	if len(s.Rows) == 0 {
		s.Cursor = 0
		s.ViewportOffset = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Rows) {
		s.Cursor = len(s.Rows) - 1
	}
}

// Current returns the row under the cursor.
func (s *Sidebar) Current() (tree.Row, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Rows) {
		return tree.Row{}, false
	}
	return s.Rows[s.Cursor], true
}

// CurrentID returns the node id under the cursor, or "".
func (s *Sidebar) CurrentID() string {
	row, ok := s.Current()
	if !ok || row.Node == nil {
		return ""
	}
	return row.Node.ID
}

// SetCursorByID moves the cursor onto the node when it is visible.
func (s *Sidebar) SetCursorByID(id string) bool {
	idx := tree.IndexOf(s.Rows, id)
	if idx < 0 {
		return false
	}
	old := s.Cursor
	s.Cursor = idx
	return old != idx
}
