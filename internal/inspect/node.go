package inspect

import "strings"

// Bounds is a screen rectangle in virtual-desktop coordinates.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ElementInfo is a snapshot of one accessibility context, as reported by the
// native bridge at tree-build time.
type ElementInfo struct {
	Name            string
	Description     string
	Role            string // canonical (en_US) role name
	LocalizedRole   string
	States          string // canonical states, comma separated
	LocalizedStates string
	IndexInParent   int
	ChildrenCount   int
	Bounds          Bounds

	// Interface availability flags reported by the bridge.
	AccessibleComponent bool
	AccessibleAction    bool
	AccessibleSelection bool
	AccessibleText      bool
	AccessibleValue     bool
	AccessibleTable     bool
	AccessibleHypertext bool

	// TextLength is the character count when the text interface is
	// available, -1 otherwise.
	TextLength int

	// KeyBindings lists the element's keyboard bindings, if any.
	KeyBindings []string

	// Handle is the native window handle owning the context, 0 if unknown.
	Handle uintptr
}

// Node is one element of an accessibility tree snapshot.
type Node struct {
	Info     ElementInfo
	Parent   *Node
	Children []*Node
	Depth    int
}

// Walk visits n and its descendants in depth-first pre-order. Returning
// false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Flatten returns n and all descendants in depth-first pre-order, which is
// the order the tree renders in.
func (n *Node) Flatten() []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		out = append(out, node)
		return true
	})
	return out
}

// IsVisible reports whether the element's canonical states include showing
// or visible.
func (n *Node) IsVisible() bool {
	states := strings.ToLower(n.Info.States)
	return strings.Contains(states, "showing") || strings.Contains(states, "visible")
}

// VisibleDescendants counts the visible nodes below n, excluding n itself.
func (n *Node) VisibleDescendants() int {
	count := 0
	n.Walk(func(node *Node) bool {
		if node != n && node.IsVisible() {
			count++
		}
		return true
	})
	return count
}

// Label renders the node as one tree row: "role | name", degrading to
// whichever part is present.
func (n *Node) Label() string {
	role := strings.TrimSpace(firstNonEmpty(n.Info.LocalizedRole, n.Info.Role))
	name := strings.TrimSpace(n.Info.Name)
	switch {
	case role != "" && name != "":
		return role + " | " + name
	case role != "":
		return role
	case name != "":
		return name
	default:
		return "?"
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
