package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()

	roots := cat.Roots()
	require.Len(t, roots, 4)
	titles := make([]string, len(roots))
	for i, root := range roots {
		titles[i] = root.Title
	}
	assert.Equal(t, []string{"Programação", "Design", "Desenvolvimento de Jogos", "Banco de Dados"}, titles)
	assert.Equal(t, 15, cat.Len())

	react, ok := cat.Find("react")
	require.True(t, ok)
	assert.True(t, react.IsLeaf())
	assert.True(t, react.HasContent())
	assert.Equal(t, 2, cat.Depth("react"))
	assert.Equal(t, "frontend", cat.ParentID("react"))
	assert.Equal(t, []string{"Programação", "Front-end", "React"}, cat.Path("react"))

	proto, ok := cat.Find("prototipagem")
	require.True(t, ok)
	assert.True(t, proto.IsLeaf())
	assert.False(t, proto.HasContent(), "prototipagem is the leaf without a locator")
}

func TestWalkPreservesDeclarationOrder(t *testing.T) {
	cat := Default()
	var ids []string
	cat.Walk(func(node *Node, depth int) bool {
		ids = append(ids, node.ID)
		return true
	})
	assert.Equal(t, []string{
		"programacao", "frontend", "react", "backend", "node", "python",
		"design", "ux", "prototipagem",
		"jogos", "unity", "unreal",
		"banco", "mysql", "mongodb",
	}, ids)
	assert.Len(t, ids, cat.Len())
}

func TestWalkStopsEarly(t *testing.T) {
	cat := Default()
	visited := 0
	cat.Walk(func(node *Node, depth int) bool {
		visited++
		return node.ID != "frontend"
	})
	assert.Equal(t, 2, visited)
}

func TestSiblings(t *testing.T) {
	cat := Default()
	sibs := cat.Siblings("backend")
	require.Len(t, sibs, 2)
	assert.Equal(t, "frontend", sibs[0].ID)
	assert.Len(t, cat.Siblings("design"), 4)
	assert.Nil(t, cat.Siblings("missing"))
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]*Node{
		{ID: "a", Title: "A", Children: []*Node{{ID: "b", Title: "B"}}},
		{ID: "b", Title: "Other B"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), `duplicate id "b"`)
}

func TestNewRejectsSharedNodes(t *testing.T) {
	shared := &Node{ID: "shared", Title: "Shared"}
	_, err := New([]*Node{
		{ID: "a", Title: "A", Children: []*Node{shared}},
		{ID: "b", Title: "B", Children: []*Node{shared}},
	})
	require.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "more than one parent")
}

func TestNewRejectsCycles(t *testing.T) {
	loop := &Node{ID: "loop", Title: "Loop"}
	loop.Children = []*Node{loop}
	_, err := New([]*Node{loop})
	require.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestNewRejectsMissingFields(t *testing.T) {
	_, err := New([]*Node{{ID: " ", Title: "Blank"}})
	require.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = New([]*Node{{ID: "x"}})
	require.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = New([]*Node{nil})
	require.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestDuplicateTitlesAreAllowed(t *testing.T) {
	cat, err := New([]*Node{
		{ID: "a", Title: "Intro"},
		{ID: "b", Title: "Intro"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
}

func TestParseTOML(t *testing.T) {
	doc := `
[[menu]]
id = "lang"
title = "Languages"

  [[menu.children]]
  id = "go"
  title = "Go"
  contentUrl = "https://example.test/embed/go"
`
	cat, err := Parse([]byte(doc), FormatTOML)
	require.NoError(t, err)
	node, ok := cat.Find("go")
	require.True(t, ok)
	assert.Equal(t, "https://example.test/embed/go", node.ContentURL)
	assert.Equal(t, 1, cat.Depth("go"))
}

func TestParseJSONThroughYAML(t *testing.T) {
	doc := `{"menu": [{"id": "a", "title": "A", "children": [{"id": "b", "title": "B"}]}]}`
	cat, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
}

func TestParseRejectsUnknownFieldsAndEmptyMenus(t *testing.T) {
	_, err := Parse([]byte("menu:\n  - id: a\n    title: A\n    colour: red\n"), FormatYAML)
	require.Error(t, err)

	_, err = Parse([]byte("menu: []\n"), FormatYAML)
	require.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = Parse([]byte("menu: []\n"), Format("xml"))
	require.Error(t, err)
}

func TestLoadPicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.yml")
	require.NoError(t, os.WriteFile(path, []byte("menu:\n  - id: a\n    title: A\n"), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	_, err = Load(filepath.Join(dir, "courses.ini"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog extension")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	cat, source, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSource, source)
	assert.Equal(t, Default().Len(), cat.Len())
}
