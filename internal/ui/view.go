package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/course-sidebar/internal/content"
	"github.com/atomicstack/course-sidebar/internal/logging"
	"github.com/atomicstack/course-sidebar/internal/logging/events"
	"github.com/atomicstack/course-sidebar/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	contentPanelMinWidth = 30 // below this the content pane moves under the sidebar
	bottomBarRows        = 2  // status line + filter prompt
	headerRows           = 1
	scrollStep           = 3
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// layout places the sidebar and the content pane for the current size.
type layout struct {
	width       int
	height      int
	side        bool
	sidebarW    int
	sidebarTop  int
	sidebarRows int
	contentW    int
	contentH    int
	contentTop  int
	contentLeft int
}

func (m *Model) layout() layout {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	body := h - headerRows - bottomBarRows
	if m.showFooter {
		body--
	}
	if body < 1 {
		body = 1
	}
	l := layout{width: w, height: h, sidebarTop: headerRows}
	sidebarW := m.sidebarWidth
	if sidebarW > w {
		sidebarW = w
	}
	if w-sidebarW >= contentPanelMinWidth {
		l.side = true
		l.sidebarW = sidebarW
		l.sidebarRows = body
		l.contentW = w - sidebarW
		l.contentH = body
		l.contentTop = headerRows
		l.contentLeft = sidebarW
		return l
	}
	l.sidebarW = w
	l.sidebarRows = body / 2
	if l.sidebarRows < 1 {
		l.sidebarRows = 1
	}
	l.contentW = w
	l.contentH = body - l.sidebarRows
	l.contentTop = headerRows + l.sidebarRows
	return l
}

func (m *Model) maxVisibleRows() int {
	return m.layout().sidebarRows
}

// View implements tea.Model.
func (m *Model) View() string {
	lay := m.layout()
	m.syncViewport()

	sections := []string{renderLines(applyWidth([]styledLine{{text: m.header(), style: styles.Header}}, lay.width))}
	sidebar := m.renderSidebar(lay.sidebarW, lay.sidebarRows)
	if lay.contentH > 0 {
		panel := m.renderContentPanel(lay.contentW, lay.contentH)
		if lay.side {
			sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, sidebar, panel))
		} else {
			sections = append(sections, sidebar, panel)
		}
	} else {
		sections = append(sections, sidebar)
	}
	if m.showFooter {
		m.help.Width = lay.width
		sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	bottom := []styledLine{
		{text: m.statusText(), style: styles.Info},
	}
	sections = append(sections, renderLines(applyWidth(bottom, lay.width)))
	sections = append(sections, m.filterPrompt())
	return strings.Join(sections, "\n")
}

// header shows the breadcrumb of the selection.
func (m *Model) header() string {
	segments := []string{m.rootTitle}
	if selected := m.tree.Selected(); selected != "" {
		segments = append(segments, m.catalog.Path(selected)...)
	}
	return strings.Join(segments, headerSeparator)
}

// statusText shows where the filter has jumped to while a query is active.
func (m *Model) statusText() string {
	if m.sidebar.Filter == "" {
		return ""
	}
	id := m.sidebar.CurrentID()
	if id == "" {
		return ""
	}
	return strings.Join(m.catalog.Path(id), " › ")
}

// renderSidebar draws exactly rows lines, each width cells wide.
func (m *Model) renderSidebar(width, rows int) string {
	all := m.sidebar.Rows
	start := m.sidebar.ViewportOffset
	if start < 0 || start >= len(all) {
		start = 0
	}
	end := start + rows
	if end > len(all) {
		end = len(all)
	}
	lines := make([]styledLine, 0, rows)
	if len(all) == 0 {
		lines = append(lines, styledLine{text: "(catálogo vazio)", style: styles.Info})
	}
	for i := start; i < end; i++ {
		lines = append(lines, buildRowLine(all[i], i == m.sidebar.Cursor, width))
	}
	for len(lines) < rows {
		lines = append(lines, styledLine{})
	}
	out := strings.Split(renderLines(lines), "\n")
	for i, row := range out {
		out[i] = fitWidth(row, width)
	}
	return strings.Join(out, "\n")
}

// buildRowLine constructs one sidebar row: indicator, indent, icon, title and
// a chevron pointing up when the branch is open.
func buildRowLine(row tree.Row, cursor bool, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if row.HasChildren {
		lineStyle = styles.Branch
	}
	if row.Selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	if cursor {
		indicatorStyle = styles.CursorItemIndicator
		if !row.Selected {
			lineStyle = styles.CursorItem
		}
	}
	label := strings.Repeat("  ", row.Depth)
	if row.Node.Icon != "" {
		label += row.Node.Icon + " "
	}
	label += row.Node.Title
	chevron := " "
	if row.HasChildren {
		chevron = "▼"
		if row.Expanded {
			chevron = "▲"
		}
	}
	text := "▌ " + label
	if width > 0 {
		room := width - 2
		if room < 1 {
			room = 1
		}
		if lipgloss.Width(text) > room {
			text = truncate.StringWithTail(text, uint(room), "…")
		}
		if pad := room - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		text += chevron + " "
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// renderContentPanel builds the bordered content box with exactly height rows
// and totalWidth columns.
func (m *Model) renderContentPanel(totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	border := styles.ContentBorder
	if border == nil {
		plain := lipgloss.NewStyle()
		border = &plain
	}
	if height < 3 {
		lines := make([]string, height)
		for i := range lines {
			if i < len(m.paneLines) {
				lines[i] = fitWidth(m.paneLines[i], totalWidth)
			} else {
				lines[i] = strings.Repeat(" ", max(totalWidth, 0))
			}
		}
		return strings.Join(lines, "\n")
	}

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}

	visible := m.paneLines
	scrollSeg := ""
	if len(visible) > innerH {
		maxOffset := len(visible) - innerH
		if m.contentOffset > maxOffset {
			m.contentOffset = maxOffset
		}
		if m.contentOffset < 0 {
			m.contentOffset = 0
		}
		visible = visible[m.contentOffset : m.contentOffset+innerH]
		scrollSeg = fmt.Sprintf(" %d/%d ", m.contentOffset+innerH, len(m.paneLines))
	}

	titleSeg := ""
	if m.pane.Kind != content.Blank && m.pane.Title != "" {
		titleSeg = " " + m.pane.Title + " "
	}
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg) - lipgloss.Width(scrollSeg)
	if dashes < 0 {
		scrollSeg = ""
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		titleSeg = ""
		dashes = totalWidth - 4
	}
	if dashes < 0 {
		dashes = 0
	}
	titleStyle := styles.ContentTitle
	if titleStyle == nil {
		titleStyle = border
	}
	topLine := border.Render(tlc+hz) +
		titleStyle.Render(titleSeg) +
		border.Render(strings.Repeat(hz, dashes)) +
		border.Render(scrollSeg) +
		border.Render(hz+trc)
	bottomLine := border.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(visible) {
			line = visible[i]
		}
		rows = append(rows, border.Render(vt)+fitWidth(line, innerW)+border.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// refreshContent resolves the pane for the current selection and renders it
// at the current panel width. Rendering errors are logged and the plain
// fallback is shown instead.
func (m *Model) refreshContent() {
	pane := content.Resolve(m.catalog, m.tree.Selected(), m.emptyMode)
	if pane.Kind != m.pane.Kind || pane.NodeID != m.pane.NodeID {
		m.contentOffset = 0
		events.Content.Show(pane.Kind.String(), pane.NodeID, pane.Locator)
	}
	m.pane = pane
	lay := m.layout()
	if err := m.renderer.Resize(lay.contentW - 2); err != nil {
		logging.Error(err)
	}
	lines, err := m.renderer.Render(pane)
	if err != nil {
		logging.Error(err)
		events.Content.RenderError(pane.NodeID, err)
	}
	m.paneLines = lines
}

// handleMouseMsg clicks sidebar rows and scrolls whichever pane is under the
// wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	lay := m.layout()
	overSidebar := ev.Y >= lay.sidebarTop && ev.Y < lay.sidebarTop+lay.sidebarRows && ev.X < lay.sidebarW
	overContent := ev.Y >= lay.contentTop && ev.Y < lay.contentTop+lay.contentH && ev.X >= lay.contentLeft
	switch ev.Button {
	case tea.MouseButtonLeft:
		if ev.Action != tea.MouseActionPress || !overSidebar {
			return nil
		}
		idx := m.sidebar.ViewportOffset + ev.Y - lay.sidebarTop
		if idx < 0 || idx >= len(m.sidebar.Rows) {
			return nil
		}
		m.sidebar.Cursor = idx
		m.click(m.sidebar.Rows[idx].Node.ID, clickSourceMouse)
	case tea.MouseButtonWheelUp:
		if overSidebar {
			m.moveCursor(m.sidebar.MoveCursorPageUp(1))
		} else if overContent {
			m.scrollContent(-scrollStep)
		}
	case tea.MouseButtonWheelDown:
		if overSidebar {
			m.moveCursor(m.sidebar.MoveCursorPageDown(1))
		} else if overContent {
			m.scrollContent(scrollStep)
		}
	}
	return nil
}

func (m *Model) scrollContent(delta int) {
	innerH := m.layout().contentH - 2
	maxOffset := len(m.paneLines) - innerH
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.contentOffset += delta
	if m.contentOffset > maxOffset {
		m.contentOffset = maxOffset
	}
	if m.contentOffset < 0 {
		m.contentOffset = 0
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncViewport()
	m.refreshContent()
	return nil
}

// fitWidth pads or truncates s to exactly width visible cells. It is ANSI
// aware, so hyperlinks and glamour styling survive.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		s = ansi.Truncate(s, width, "…")
		w = ansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
