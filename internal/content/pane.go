// Package content resolves what the content pane shows for a selection and
// renders it for the terminal.
package content

import (
	"fmt"
	"strings"

	"github.com/atomicstack/course-sidebar/internal/catalog"
)

// Kind is the variant of the content pane.
type Kind int

const (
	// Placeholder prompts the user to pick an entry.
	Placeholder Kind = iota
	// Viewer shows the embedded resource of the selected entry.
	Viewer
	// Notice explains that the selected entry has no content.
	Notice
	// Blank renders nothing below the sidebar selection.
	Blank
)

func (k Kind) String() string {
	switch k {
	case Placeholder:
		return "placeholder"
	case Viewer:
		return "viewer"
	case Notice:
		return "notice"
	case Blank:
		return "blank"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// EmptyMode chooses what a selection without a content locator shows.
type EmptyMode string

const (
	EmptyPlaceholder EmptyMode = "placeholder"
	EmptyNotice      EmptyMode = "notice"
	EmptyBlank       EmptyMode = "blank"
)

// DefaultEmptyMode is used when no mode is configured.
const DefaultEmptyMode = EmptyNotice

// ParseEmptyMode validates a configured mode. Empty input yields the default.
func ParseEmptyMode(value string) (EmptyMode, error) {
	switch mode := EmptyMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return DefaultEmptyMode, nil
	case EmptyPlaceholder, EmptyNotice, EmptyBlank:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown empty-content mode %q (want placeholder, notice or blank)", value)
	}
}

const (
	PlaceholderTitle   = "Selecione uma opção"
	PlaceholderMessage = "Conteúdo relacionado aparecerá aqui quando você selecionar uma opção."
	NoticeMessage      = "Nenhum conteúdo disponível para esta opção."
)

// Pane is the resolved state of the content pane.
type Pane struct {
	Kind    Kind
	NodeID  string
	Title   string
	Locator string
	Message string
	Path    []string
}

// Resolve decides what the content pane shows for the selected node id.
// The locator is carried verbatim.
func Resolve(cat *catalog.Catalog, selectedID string, mode EmptyMode) Pane {
	node, ok := cat.Find(selectedID)
	if selectedID == "" || !ok {
		return placeholder()
	}
	if node.HasContent() {
		return Pane{
			Kind:    Viewer,
			NodeID:  node.ID,
			Title:   node.Title,
			Locator: node.ContentURL,
			Path:    cat.Path(node.ID),
		}
	}
	switch mode {
	case EmptyPlaceholder:
		return placeholder()
	case EmptyBlank:
		return Pane{Kind: Blank, NodeID: node.ID}
	default:
		return Pane{
			Kind:    Notice,
			NodeID:  node.ID,
			Title:   node.Title,
			Message: NoticeMessage,
			Path:    cat.Path(node.ID),
		}
	}
}

func placeholder() Pane {
	return Pane{Kind: Placeholder, Title: PlaceholderTitle, Message: PlaceholderMessage}
}
