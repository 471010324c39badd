package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog is wrapped by every structural validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Node is a single menu entry. A node without children is a leaf.
type Node struct {
	ID         string  `yaml:"id" toml:"id"`
	Title      string  `yaml:"title" toml:"title"`
	Icon       string  `yaml:"icon,omitempty" toml:"icon,omitempty"`
	ContentURL string  `yaml:"contentUrl,omitempty" toml:"contentUrl,omitempty"`
	Children   []*Node `yaml:"children,omitempty" toml:"children,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n == nil || len(n.Children) == 0
}

// HasContent reports whether the node carries a content locator.
func (n *Node) HasContent() bool {
	return n != nil && strings.TrimSpace(n.ContentURL) != ""
}

// Catalog is an immutable, indexed course tree.
type Catalog struct {
	roots   []*Node
	byID    map[string]*Node
	parents map[string]string
	depths  map[string]int
}

// New validates the supplied roots and indexes them. The catalog keeps the
// node pointers; callers must not mutate them afterwards.
func New(roots []*Node) (*Catalog, error) {
	c := &Catalog{
		roots:   roots,
		byID:    make(map[string]*Node),
		parents: make(map[string]string),
		depths:  make(map[string]int),
	}
	seen := make(map[*Node]struct{})
	var index func(nodes []*Node, parentID string, depth int) error
	index = func(nodes []*Node, parentID string, depth int) error {
		for i, node := range nodes {
			if node == nil {
				return fmt.Errorf("%w: empty entry at position %d under %s", ErrInvalidCatalog, i, describeParent(parentID))
			}
			if _, ok := seen[node]; ok {
				return fmt.Errorf("%w: node %q has more than one parent", ErrInvalidCatalog, node.ID)
			}
			seen[node] = struct{}{}
			if strings.TrimSpace(node.ID) == "" {
				return fmt.Errorf("%w: entry at position %d under %s has no id", ErrInvalidCatalog, i, describeParent(parentID))
			}
			if strings.TrimSpace(node.Title) == "" {
				return fmt.Errorf("%w: node %q has no title", ErrInvalidCatalog, node.ID)
			}
			if _, dup := c.byID[node.ID]; dup {
				return fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, node.ID)
			}
			c.byID[node.ID] = node
			c.parents[node.ID] = parentID
			c.depths[node.ID] = depth
			if err := index(node.Children, node.ID, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := index(roots, "", 0); err != nil {
		return nil, err
	}
	return c, nil
}

func describeParent(id string) string {
	if id == "" {
		return "the catalog root"
	}
	return fmt.Sprintf("%q", id)
}

// Roots returns the depth-0 entries in order.
func (c *Catalog) Roots() []*Node {
	if c == nil {
		return nil
	}
	return c.roots
}

// Len returns the number of nodes in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}

// Find locates a node by id.
func (c *Catalog) Find(id string) (*Node, bool) {
	if c == nil {
		return nil, false
	}
	node, ok := c.byID[id]
	return node, ok
}

// ParentID returns the id of the node's parent, or "" for roots and unknown ids.
func (c *Catalog) ParentID(id string) string {
	if c == nil {
		return ""
	}
	return c.parents[id]
}

// Parent returns the node's parent. Roots have none.
func (c *Catalog) Parent(id string) (*Node, bool) {
	parentID := c.ParentID(id)
	if parentID == "" {
		return nil, false
	}
	return c.Find(parentID)
}

// Depth returns the node depth (0 for roots) or -1 for unknown ids.
func (c *Catalog) Depth(id string) int {
	if c == nil {
		return -1
	}
	depth, ok := c.depths[id]
	if !ok {
		return -1
	}
	return depth
}

// Siblings returns the ordered children of the node's parent, the node included.
func (c *Catalog) Siblings(id string) []*Node {
	if _, ok := c.Find(id); !ok {
		return nil
	}
	if parent, ok := c.Parent(id); ok {
		return parent.Children
	}
	return c.roots
}

// Path returns the titles from the root down to the node.
func (c *Catalog) Path(id string) []string {
	node, ok := c.Find(id)
	if !ok {
		return nil
	}
	path := []string{node.Title}
	for parent, ok := c.Parent(id); ok; parent, ok = c.Parent(parent.ID) {
		path = append([]string{parent.Title}, path...)
	}
	return path
}

// Walk visits every node depth-first in declaration order. Returning false
// from fn stops the walk.
func (c *Catalog) Walk(fn func(node *Node, depth int) bool) {
	if c == nil || fn == nil {
		return
	}
	var visit func(nodes []*Node, depth int) bool
	visit = func(nodes []*Node, depth int) bool {
		for _, node := range nodes {
			if !fn(node, depth) {
				return false
			}
			if !visit(node.Children, depth+1) {
				return false
			}
		}
		return true
	}
	visit(c.roots, 0)
}
