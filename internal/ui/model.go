package ui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/atomicstack/course-sidebar/internal/catalog"
	"github.com/atomicstack/course-sidebar/internal/content"
	"github.com/atomicstack/course-sidebar/internal/theme"
	"github.com/atomicstack/course-sidebar/internal/tree"
	uistate "github.com/atomicstack/course-sidebar/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerSeparator     = " → "
	defaultRootTitle    = "Cursos"
	defaultSidebarWidth = 32
	defaultWidth        = 80
	defaultHeight       = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Catalog      *catalog.Catalog
	Policy       tree.Policy
	EmptyMode    content.EmptyMode
	ContentStyle string
	SidebarWidth int
	// Width and Height pin the layout; zero follows the terminal.
	Width      int
	Height     int
	ShowFooter bool
	RootTitle  string
}

// Model implements the Bubble Tea model for the course sidebar.
type Model struct {
	catalog   *catalog.Catalog
	tree      *tree.State
	sidebar   *uistate.Sidebar
	emptyMode content.EmptyMode
	renderer  *content.Renderer

	pane          content.Pane
	paneLines     []string
	contentOffset int

	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	sidebarWidth int
	showFooter   bool
	rootTitle    string

	keys keyMap
	help help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model with every branch collapsed and nothing selected.
func NewModel(opts Options) (*Model, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	mode := opts.EmptyMode
	if mode == "" {
		mode = content.DefaultEmptyMode
	}
	renderer, err := content.NewRenderer(opts.ContentStyle, 1)
	if err != nil {
		return nil, fmt.Errorf("content pane: %w", err)
	}
	m := &Model{
		catalog:      cat,
		tree:         tree.NewState(opts.Policy),
		emptyMode:    mode,
		renderer:     renderer,
		sidebarWidth: opts.SidebarWidth,
		showFooter:   opts.ShowFooter,
		rootTitle:    strings.TrimSpace(opts.RootTitle),
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
	if m.sidebarWidth <= 0 {
		m.sidebarWidth = defaultSidebarWidth
	}
	if m.rootTitle == "" {
		m.rootTitle = defaultRootTitle
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if styles.Footer != nil {
		m.help.Styles.ShortKey = styles.Footer.Copy().Bold(true)
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.ShortSeparator = styles.Footer.Copy()
	}
	m.sidebar = uistate.NewSidebar(tree.Rows(cat, m.tree))
	m.refreshContent()
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Selected returns the id of the selected node, or "" before the first click.
func (m *Model) Selected() string {
	return m.tree.Selected()
}

// Pane returns what the content pane currently shows.
func (m *Model) Pane() content.Pane {
	return m.pane
}
