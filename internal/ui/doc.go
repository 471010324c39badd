// Package ui contains the Bubble Tea program that renders the course sidebar
// next to its content pane.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (keys, mouse, resize).
//   - Navigation helpers (navigation.go) turn keys and clicks into tree
//     transitions. The transitions are planned by internal/tree, applied to the
//     tree.State owned by the Model, and traced one by one.
//   - Filter helpers (input.go) keep text entry separate from navigation.
//     Typing never hides rows; it moves the cursor to the best match.
//
// State ownership:
//   - The Model owns the only tree.State: the selected node id and the set of
//     open branch ids. Nothing else mutates it.
//   - internal/ui/state.Sidebar holds the visible rows, cursor, viewport and
//     filter. It is rebuilt from the tree state after every transition.
//   - The content pane is derived from the selection through
//     internal/content and re-rendered whenever the selection or size changes.
package ui
