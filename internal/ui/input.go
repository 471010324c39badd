package ui

import (
	"unicode"

	"github.com/atomicstack/course-sidebar/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleTextInput feeds printable keys into the jump-to filter. Spaces are
// left alone because space clicks the row under the cursor.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if !m.sidebar.ClearFilter() {
			return false
		}
		events.Filter.Cleared()
		m.syncViewport()
		return true
	case "ctrl+w":
		if !m.sidebar.DeleteFilterWordBackward() {
			return false
		}
		m.afterFilterEdit()
		events.Filter.Backspace(m.sidebar.Filter)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.sidebar.DeleteFilterRuneBackward() {
			return false
		}
		m.afterFilterEdit()
		events.Filter.Backspace(m.sidebar.Filter)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if !m.sidebar.InsertFilterText(text) {
		return false
	}
	m.afterFilterEdit()
	events.Filter.Append(m.sidebar.Filter, m.sidebar.CurrentID())
	return true
}

func (m *Model) afterFilterEdit() {
	m.syncViewport()
}

func (m *Model) filterPrompt() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text, style := m.sidebar.Filter, styles.Filter
	if text == "" {
		text, style = "(digite para buscar)", styles.FilterPlaceholder
	}
	if style == nil {
		return prompt + text
	}
	return prompt + style.Render(text)
}
