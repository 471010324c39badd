package ui

import (
	"github.com/atomicstack/course-sidebar/internal/logging"
	"github.com/atomicstack/course-sidebar/internal/logging/events"
	"github.com/atomicstack/course-sidebar/internal/tree"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	clickSourceKey   = "key"
	clickSourceMouse = "mouse"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return m.quit()
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Escape):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Click):
		m.clickCurrent()
	case key.Matches(keyMsg, m.keys.Expand):
		m.expandCurrent()
	case key.Matches(keyMsg, m.keys.Collapse):
		m.collapseCurrent()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.sidebar.MoveCursorUp())
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.sidebar.MoveCursorDown())
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(m.sidebar.MoveCursorPageUp(m.maxVisibleRows()))
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(m.sidebar.MoveCursorPageDown(m.maxVisibleRows()))
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.sidebar.MoveCursorHome())
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.sidebar.MoveCursorEnd())
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	events.App.Stop(m.tree.Selected())
	return tea.Quit
}

// handleEscapeKey clears an active filter first and quits otherwise.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.sidebar.ClearFilter() {
		events.Filter.Cleared()
		m.syncViewport()
		return nil
	}
	return m.quit()
}

func (m *Model) moveCursor(moved bool) {
	if moved {
		events.UI.Cursor(m.sidebar.Cursor, m.sidebar.CurrentID())
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.sidebar.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) clickCurrent() {
	if id := m.sidebar.CurrentID(); id != "" {
		m.click(id, clickSourceKey)
	}
}

// click activates a node the way a pointer click on its row would: the node
// becomes the selection and, for branches, its expansion toggles.
func (m *Model) click(id, source string) {
	plan := m.tree.Click(m.catalog, id)
	if len(plan) == 0 {
		return
	}
	events.UI.Click(id, m.catalog.Depth(id), source)
	m.sidebar.ClearFilter()
	m.apply(plan, id)
}

func (m *Model) expandCurrent() {
	row, ok := m.sidebar.Current()
	if !ok || !row.HasChildren {
		return
	}
	if row.Expanded {
		m.moveCursor(m.sidebar.MoveCursorDown())
		return
	}
	m.apply(m.tree.Expand(m.catalog, row.Node.ID), row.Node.ID)
}

func (m *Model) collapseCurrent() {
	row, ok := m.sidebar.Current()
	if !ok {
		return
	}
	if row.HasChildren && row.Expanded {
		m.apply(m.tree.Collapse(m.catalog, row.Node.ID), row.Node.ID)
		return
	}
	if parentID := m.catalog.ParentID(row.Node.ID); parentID != "" {
		m.moveCursor(m.sidebar.SetCursorByID(parentID))
	}
}

// apply commits a transition plan, then rebuilds the visible rows keeping the
// cursor on keepID and refreshes the content pane.
func (m *Model) apply(plan []tree.Transition, keepID string) {
	if len(plan) == 0 {
		return
	}
	m.tree.Apply(plan...)
	for _, t := range plan {
		depth := m.catalog.Depth(t.NodeID)
		switch t.Kind {
		case tree.Select:
			title := ""
			if node, ok := m.catalog.Find(t.NodeID); ok {
				title = node.Title
			}
			events.Selection.Select(t.NodeID, title)
		case tree.Expand:
			events.Tree.Expand(t.NodeID, depth)
		case tree.Collapse:
			events.Tree.Collapse(t.NodeID, depth)
		}
	}
	if logging.TraceEnabled() {
		logging.Trace("tree.state", map[string]interface{}{"open": m.tree.OpenIDs(), "selected": m.tree.Selected()})
	}
	m.sidebar.SetRows(tree.Rows(m.catalog, m.tree), keepID)
	m.syncViewport()
	m.refreshContent()
}
