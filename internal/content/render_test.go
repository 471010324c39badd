package content

import (
	"strings"
	"testing"

	"github.com/atomicstack/course-sidebar/internal/catalog"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
)

func TestMarkdownViewer(t *testing.T) {
	pane := Resolve(catalog.Default(), "react", DefaultEmptyMode)
	md := Markdown(pane)
	if !strings.HasPrefix(md, "# React\n") {
		t.Fatalf("expected heading, got %q", md)
	}
	if !strings.Contains(md, "Programação › Front-end › React") {
		t.Fatalf("expected breadcrumb, got %q", md)
	}
	if strings.Contains(md, pane.Locator) {
		t.Fatalf("expected locator kept out of markdown, got %q", md)
	}
}

func TestMarkdownBlankIsEmpty(t *testing.T) {
	if md := Markdown(Pane{Kind: Blank, NodeID: "x"}); md != "" {
		t.Fatalf("expected empty markdown, got %q", md)
	}
}

func TestHyperlinkCarriesLocator(t *testing.T) {
	link := Hyperlink("https://example.test/embed/1", "watch")
	if !strings.Contains(link, "https://example.test/embed/1") {
		t.Fatalf("expected locator in hyperlink, got %q", link)
	}
	if got := ansi.Strip(link); got != "watch" {
		t.Fatalf("expected visible text 'watch', got %q", got)
	}
	if got := ansi.Strip(Hyperlink("https://example.test", "")); got != "https://example.test" {
		t.Fatalf("expected locator as fallback text, got %q", got)
	}
}

func TestRendererRendersViewerAndLink(t *testing.T) {
	r, err := NewRenderer(styles.NoTTYStyle, 60)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	pane := Resolve(catalog.Default(), "node", DefaultEmptyMode)
	lines, err := r.Render(pane)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := ansi.Strip(strings.Join(lines, "\n"))
	if !strings.Contains(text, "Node") {
		t.Fatalf("expected title in output, got:\n%s", text)
	}
	if !strings.Contains(text, pane.Locator) {
		t.Fatalf("expected locator line in output, got:\n%s", text)
	}
}

func TestRendererBlankPaneIsEmpty(t *testing.T) {
	r, err := NewRenderer(styles.NoTTYStyle, 40)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	lines, err := r.Render(Pane{Kind: Blank})
	if err != nil || lines != nil {
		t.Fatalf("expected nothing for blank pane, got %v, %v", lines, err)
	}
}

func TestRendererResize(t *testing.T) {
	r, err := NewRenderer("", 0)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	if r.Width() != 1 {
		t.Fatalf("expected width clamped to 1, got %d", r.Width())
	}
	if err := r.Resize(72); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if r.Width() != 72 {
		t.Fatalf("expected width 72, got %d", r.Width())
	}
}

func TestNewRendererRejectsUnknownStyle(t *testing.T) {
	if _, err := NewRenderer("sparkly", 40); err == nil {
		t.Fatalf("expected error for unknown style")
	}
	if !ValidStyle(AutoStyle) || !ValidStyle(styles.DarkStyle) {
		t.Fatalf("expected auto and dark to be valid")
	}
	names := Styles()
	if names[0] != AutoStyle || len(names) < 2 {
		t.Fatalf("unexpected style list %v", names)
	}
}

func TestPlainFallback(t *testing.T) {
	lines := Plain(Resolve(catalog.Default(), "prototipagem", EmptyNotice))
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Prototipagem") || !strings.Contains(joined, NoticeMessage) {
		t.Fatalf("unexpected plain output:\n%s", joined)
	}
	if Plain(Pane{Kind: Blank}) != nil {
		t.Fatalf("expected nil for blank pane")
	}
}
