package domain

// Well-known identifiers of the absolute root of the note hierarchy
const (
	RootNoteID     = "root"
	RootBranchID   = "root"
	NoParentNoteID = "none"
)

// NoteType is the closed set of note types known to the tree
type NoteType string

const (
	NoteTypeText        NoteType = "text"
	NoteTypeFile        NoteType = "file"
	NoteTypeImage       NoteType = "image"
	NoteTypeCode        NoteType = "code"
	NoteTypeRender      NoteType = "render"
	NoteTypeSearch      NoteType = "search"
	NoteTypeRelationMap NoteType = "relation-map"
	NoteTypeBook        NoteType = "book"
)

// NoteKind selects how the children of a note are resolved
type NoteKind int

const (
	// KindNormal notes list their stored child branches
	KindNormal NoteKind = iota
	// KindSearch notes list result branches computed by the store
	KindSearch
)

func (k NoteKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Kind returns the child-resolution kind for the note type
func (t NoteType) Kind() NoteKind {
	if t == NoteTypeSearch {
		return KindSearch
	}
	return KindNormal
}

// AttributeType distinguishes labels from relations
type AttributeType string

const (
	AttributeLabel    AttributeType = "label"
	AttributeRelation AttributeType = "relation"
)

// Attribute names the tree cares about
const (
	LabelIconClass    = "iconClass"
	LabelCSSClass     = "cssClass"
	LabelArchived     = "archived"
	RelationImageLink = "imageLink"
)

// Attribute is a key/value label or relation owned by a note.
// For relations, Value holds the target note ID.
type Attribute struct {
	NoteID   string
	Type     AttributeType
	Name     string
	Value    string
	Position int
}

// Note is a content record as held by the note cache.
// Notes are treated as immutable once published by the cache.
type Note struct {
	ID          string
	Title       string
	Type        NoteType
	Mime        string
	IsProtected bool
	Attributes  []Attribute

	// Relations to other notes, filled in by the cache.
	// A nil ChildBranchIDs means the child list is unavailable,
	// which is distinct from an empty list.
	ParentNoteIDs   []string
	ParentBranchIDs []string
	ChildBranchIDs  []string
}

// Kind returns how the note's children are resolved
func (n *Note) Kind() NoteKind {
	return n.Type.Kind()
}

// Labels returns the values of all labels with the given name, in attribute order
func (n *Note) Labels(name string) []string {
	return n.attributeValues(AttributeLabel, name)
}

// Relations returns the target note IDs of all relations with the given name
func (n *Note) Relations(name string) []string {
	return n.attributeValues(AttributeRelation, name)
}

// HasLabel reports whether the note carries a label with the given name
func (n *Note) HasLabel(name string) bool {
	for _, attr := range n.Attributes {
		if attr.Type == AttributeLabel && attr.Name == name {
			return true
		}
	}
	return false
}

// CSSClass returns the value of the first cssClass label, or ""
func (n *Note) CSSClass() string {
	values := n.Labels(LabelCSSClass)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// HasChildren reports whether the note has any child branch at all
func (n *Note) HasChildren() bool {
	return len(n.ChildBranchIDs) > 0
}

func (n *Note) attributeValues(attrType AttributeType, name string) []string {
	var values []string
	for _, attr := range n.Attributes {
		if attr.Type == attrType && attr.Name == name {
			values = append(values, attr.Value)
		}
	}
	return values
}

// Branch links a note to one of its parents and carries per-link view state
type Branch struct {
	ID           string
	NoteID       string
	ParentNoteID string
	Prefix       string
	IsExpanded   bool
	Position     int
}

// NoteSet is a batch of note and branch records read from a store
type NoteSet struct {
	Notes    []*Note
	Branches []*Branch
}
