package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
)

const (
	// AutoStyle picks dark or light from the terminal background.
	AutoStyle    = "auto"
	DefaultStyle = styles.DarkStyle
	pathSep      = " › "
	viewerLabel  = "▶ Vídeo incorporado"
)

// Styles lists the accepted style names.
func Styles() []string {
	names := make([]string, 0, len(styles.DefaultStyles)+1)
	names = append(names, AutoStyle)
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// ValidStyle reports whether name is a known glamour style.
func ValidStyle(name string) bool {
	if name == AutoStyle {
		return true
	}
	_, ok := styles.DefaultStyles[name]
	return ok
}

// Markdown describes the pane as a markdown document. The locator is left out;
// it is attached as a terminal hyperlink instead so it reaches the terminal
// untouched.
func Markdown(p Pane) string {
	if p.Kind == Blank {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if len(p.Path) > 1 {
		fmt.Fprintf(&b, "*%s*\n\n", strings.Join(p.Path, pathSep))
	}
	switch p.Kind {
	case Viewer:
		fmt.Fprintf(&b, "**%s**\n", viewerLabel)
	default:
		if p.Message != "" {
			fmt.Fprintf(&b, "%s\n", p.Message)
		}
	}
	return b.String()
}

// Hyperlink wraps text in an OSC 8 hyperlink pointing at locator. Terminals
// without hyperlink support print text alone.
func Hyperlink(locator, text string) string {
	if text == "" {
		text = locator
	}
	return ansi.SetHyperlink(locator) + text + ansi.ResetHyperlink()
}

// Renderer turns panes into terminal output through glamour. A renderer is
// bound to a wrap width; call Resize when the pane changes size.
type Renderer struct {
	style string
	width int
	term  *glamour.TermRenderer
}

// NewRenderer builds a renderer for the given glamour style and wrap width.
func NewRenderer(style string, width int) (*Renderer, error) {
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}
	if !ValidStyle(style) {
		return nil, fmt.Errorf("unknown content style %q", style)
	}
	r := &Renderer{style: style}
	if err := r.Resize(width); err != nil {
		return nil, err
	}
	return r, nil
}

// Width returns the wrap width the renderer is bound to.
func (r *Renderer) Width() int {
	return r.width
}

// Resize rebuilds the underlying glamour renderer for a new wrap width.
func (r *Renderer) Resize(width int) error {
	if width < 1 {
		width = 1
	}
	if r.term != nil && width == r.width {
		return nil
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if r.style == AutoStyle {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(r.style))
	}
	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("content renderer: %w", err)
	}
	r.term = term
	r.width = width
	return nil
}

// Render returns the pane body as display lines. Blank panes render nothing.
func (r *Renderer) Render(p Pane) ([]string, error) {
	if p.Kind == Blank {
		return nil, nil
	}
	out, err := r.term.Render(Markdown(p))
	if err != nil {
		return Plain(p), fmt.Errorf("render %s pane: %w", p.Kind, err)
	}
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	if p.Kind == Viewer {
		lines = append(lines, "", Hyperlink(p.Locator, p.Locator))
	}
	return lines, nil
}

// Plain renders the pane without markdown styling.
func Plain(p Pane) []string {
	if p.Kind == Blank {
		return nil
	}
	lines := []string{p.Title}
	if len(p.Path) > 1 {
		lines = append(lines, strings.Join(p.Path, pathSep))
	}
	lines = append(lines, "")
	switch p.Kind {
	case Viewer:
		lines = append(lines, viewerLabel, Hyperlink(p.Locator, p.Locator))
	default:
		if p.Message != "" {
			lines = append(lines, p.Message)
		}
	}
	return lines
}
