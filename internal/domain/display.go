package domain

// DisplayNode is the view-model of one branch as consumed by a tree widget.
// Nodes are derived fresh on every build and hold no resources.
type DisplayNode struct {
	NoteID       string   `json:"noteId"`
	ParentNoteID string   `json:"parentNoteId"`
	BranchID     string   `json:"branchId"`
	IsProtected  bool     `json:"isProtected"`
	NoteType     NoteType `json:"noteType"`
	Title        string   `json:"title"` // HTML-escaped
	ExtraClasses string   `json:"extraClasses"`
	Icon         string   `json:"icon,omitempty"`
	RefKey       string   `json:"refKey"`
	Folder       bool     `json:"folder"`
	Expanded     bool     `json:"expanded"`
	Lazy         bool     `json:"lazy"`

	// Key is a random per-render value that keeps sibling widget keys
	// distinct across re-renders. It carries no meaning and is ignored by Equal.
	Key string `json:"key"`

	// Children is set only for expanded folders
	Children []*DisplayNode `json:"children,omitempty"`
}

// FlatNode is a node with its depth below the flattened root
type FlatNode struct {
	Node  *DisplayNode
	Depth int
}

// Walk visits the node and its materialized descendants depth-first.
// Returning false from fn skips the node's children.
func (n *DisplayNode) Walk(fn func(node *DisplayNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *DisplayNode) walk(fn func(node *DisplayNode, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *DisplayNode) Flatten() []FlatNode {
	var result []FlatNode
	n.Walk(func(node *DisplayNode, depth int) bool {
		result = append(result, FlatNode{Node: node, Depth: depth})
		return node.Expanded
	})
	return result
}

// Collapse folds the node back into a lazy folder, dropping its children
func (n *DisplayNode) Collapse() {
	n.Expanded = false
	n.Lazy = n.Folder
	n.Children = nil
}

// SetChildren attaches lazily loaded children and marks the node expanded
func (n *DisplayNode) SetChildren(children []*DisplayNode) {
	n.Children = children
	n.Expanded = true
	n.Lazy = false
}

// Equal compares two subtrees by content, ignoring per-render keys
func (n *DisplayNode) Equal(other *DisplayNode) bool {
	if n == nil || other == nil {
		return n == other
	}

	if n.NoteID != other.NoteID ||
		n.ParentNoteID != other.ParentNoteID ||
		n.BranchID != other.BranchID ||
		n.IsProtected != other.IsProtected ||
		n.NoteType != other.NoteType ||
		n.Title != other.Title ||
		n.ExtraClasses != other.ExtraClasses ||
		n.Icon != other.Icon ||
		n.RefKey != other.RefKey ||
		n.Folder != other.Folder ||
		n.Expanded != other.Expanded ||
		n.Lazy != other.Lazy {
		return false
	}

	if (n.Children == nil) != (other.Children == nil) || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
