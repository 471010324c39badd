package tree

import "fmt"

// Kind enumerates the state changes a plan can contain.
type Kind int

const (
	Select Kind = iota
	Expand
	Collapse
)

func (k Kind) String() string {
	switch k {
	case Select:
		return "select"
	case Expand:
		return "expand"
	case Collapse:
		return "collapse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Transition describes one state change.
type Transition struct {
	Kind   Kind
	NodeID string
}

func (t Transition) String() string {
	return t.Kind.String() + ":" + t.NodeID
}
