package tree

import "github.com/atomicstack/course-sidebar/internal/catalog"

// RenderNode is one entry of the render tree. Children is empty unless the
// node is expanded.
type RenderNode struct {
	Node        *catalog.Node
	Depth       int
	HasChildren bool
	Expanded    bool
	Selected    bool
	Children    []RenderNode
}

// Row is a RenderNode without its subtree, as drawn by line-based views.
type Row struct {
	Node        *catalog.Node
	Depth       int
	HasChildren bool
	Expanded    bool
	Selected    bool
}

// Render walks the catalog and produces the render tree for state.
// Selection is matched by id, so nodes sharing a title are never both marked.
func Render(cat *catalog.Catalog, s *State) []RenderNode {
	return renderLevel(cat.Roots(), 0, s)
}

func renderLevel(nodes []*catalog.Node, depth int, s *State) []RenderNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]RenderNode, 0, len(nodes))
	for _, node := range nodes {
		rn := RenderNode{
			Node:        node,
			Depth:       depth,
			HasChildren: !node.IsLeaf(),
			Expanded:    !node.IsLeaf() && s.IsOpen(node.ID),
			Selected:    s.Selected() != "" && s.Selected() == node.ID,
		}
		if rn.Expanded {
			rn.Children = renderLevel(node.Children, depth+1, s)
		}
		out = append(out, rn)
	}
	return out
}

// Flatten lists the render tree in pre-order.
func Flatten(nodes []RenderNode) []Row {
	var rows []Row
	var visit func([]RenderNode)
	visit = func(level []RenderNode) {
		for _, rn := range level {
			rows = append(rows, Row{
				Node:        rn.Node,
				Depth:       rn.Depth,
				HasChildren: rn.HasChildren,
				Expanded:    rn.Expanded,
				Selected:    rn.Selected,
			})
			visit(rn.Children)
		}
	}
	visit(nodes)
	return rows
}

// Rows renders and flattens in one step.
func Rows(cat *catalog.Catalog, s *State) []Row {
	return Flatten(Render(cat, s))
}

// IndexOf returns the row index of the node, or -1.
func IndexOf(rows []Row, id string) int {
	for i, row := range rows {
		if row.Node != nil && row.Node.ID == id {
			return i
		}
	}
	return -1
}
