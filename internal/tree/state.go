// Package tree holds the expand/collapse and selection state of the course
// sidebar and renders the catalog into a render tree.
//
// State is a single machine keyed by node id. Every node belongs to an
// exclusivity group: its parent's id, or RootGroup for depth-0 nodes. Groups
// whose members sit at a depth below Policy.ExclusiveDepth behave as an
// accordion (opening one member closes the others); deeper groups toggle
// independently. Nothing here depends on a UI framework: Click, Expand and
// Collapse only plan Transitions, Apply performs them.
package tree

import (
	"sort"

	"github.com/atomicstack/course-sidebar/internal/catalog"
)

// Group identifies the set of siblings that may share accordion exclusivity.
type Group string

// RootGroup is the synthetic group of all depth-0 nodes.
const RootGroup Group = ""

// GroupOf returns the exclusivity group for the node.
func GroupOf(cat *catalog.Catalog, id string) Group {
	return Group(cat.ParentID(id))
}

// Policy decides which groups are exclusive.
type Policy struct {
	// ExclusiveDepth is the number of top levels that behave as accordions.
	// 1 makes only depth-0 siblings mutually exclusive; 0 disables it.
	ExclusiveDepth int
}

// DefaultPolicy makes the top level an accordion and everything below it
// independent.
func DefaultPolicy() Policy {
	return Policy{ExclusiveDepth: 1}
}

// Exclusive reports whether siblings at depth are mutually exclusive.
func (p Policy) Exclusive(depth int) bool {
	return depth >= 0 && depth < p.ExclusiveDepth
}

// State is the session-scoped selection and expansion state.
type State struct {
	policy   Policy
	open     map[string]bool
	selected string
}

// NewState returns an empty state: nothing selected, everything collapsed.
func NewState(policy Policy) *State {
	if policy.ExclusiveDepth < 0 {
		policy.ExclusiveDepth = 0
	}
	return &State{policy: policy, open: make(map[string]bool)}
}

// Policy returns the exclusivity policy in use.
func (s *State) Policy() Policy {
	return s.policy
}

// Selected returns the id of the selected node, or "" when nothing is selected.
func (s *State) Selected() string {
	return s.selected
}

// IsOpen reports whether the node is expanded.
func (s *State) IsOpen(id string) bool {
	return s.open[id]
}

// OpenIDs returns the expanded node ids in lexical order.
func (s *State) OpenIDs() []string {
	ids := make([]string, 0, len(s.open))
	for id := range s.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OpenInGroup returns the expanded members of group in catalog order.
func (s *State) OpenInGroup(cat *catalog.Catalog, group Group) []string {
	members := cat.Roots()
	if group != RootGroup {
		parent, ok := cat.Find(string(group))
		if !ok {
			return nil
		}
		members = parent.Children
	}
	var ids []string
	for _, node := range members {
		if s.open[node.ID] {
			ids = append(ids, node.ID)
		}
	}
	return ids
}

// Click plans the transitions for activating a node: it is always selected,
// and branches additionally toggle. Unknown ids plan nothing.
func (s *State) Click(cat *catalog.Catalog, id string) []Transition {
	node, ok := cat.Find(id)
	if !ok {
		return nil
	}
	plan := []Transition{{Kind: Select, NodeID: id}}
	if node.IsLeaf() {
		return plan
	}
	if s.open[id] {
		return append(plan, Transition{Kind: Collapse, NodeID: id})
	}
	return append(plan, s.expandPlan(cat, id)...)
}

// Expand plans opening a branch without selecting it.
func (s *State) Expand(cat *catalog.Catalog, id string) []Transition {
	node, ok := cat.Find(id)
	if !ok || node.IsLeaf() || s.open[id] {
		return nil
	}
	return s.expandPlan(cat, id)
}

// Collapse plans closing a branch without selecting it.
func (s *State) Collapse(cat *catalog.Catalog, id string) []Transition {
	if !s.open[id] {
		return nil
	}
	if _, ok := cat.Find(id); !ok {
		return nil
	}
	return []Transition{{Kind: Collapse, NodeID: id}}
}

func (s *State) expandPlan(cat *catalog.Catalog, id string) []Transition {
	var plan []Transition
	if s.policy.Exclusive(cat.Depth(id)) {
		for _, sibling := range cat.Siblings(id) {
			if sibling.ID != id && s.open[sibling.ID] {
				plan = append(plan, Transition{Kind: Collapse, NodeID: sibling.ID})
			}
		}
	}
	return append(plan, Transition{Kind: Expand, NodeID: id})
}

// Apply performs transitions in order. Collapsing a branch keeps the open
// flags of its descendants, so reopening it restores the previous subtree.
func (s *State) Apply(transitions ...Transition) {
	for _, t := range transitions {
		switch t.Kind {
		case Select:
			s.selected = t.NodeID
		case Expand:
			s.open[t.NodeID] = true
		case Collapse:
			delete(s.open, t.NodeID)
		}
	}
}
