package domain

import (
	"regexp"
	"strings"
)

// Fixed icons for notes that are not looked up by type
const (
	IconRoot    = "bx bx-chevrons-right"
	IconHoisted = "bx bxs-arrow-from-bottom"
	IconFolder  = "bx bx-folder"
	IconNote    = "bx bx-note"
)

// noteTypeIcons maps non-text note types to their icon class
var noteTypeIcons = map[NoteType]string{
	NoteTypeFile:        "bx bx-file",
	NoteTypeImage:       "bx bx-image",
	NoteTypeCode:        "bx bx-code",
	NoteTypeRender:      "bx bx-extension",
	NoteTypeSearch:      "bx bx-file-find",
	NoteTypeRelationMap: "bx bx-map-alt",
	NoteTypeBook:        "bx bx-book",
}

// Extra classes added to tree nodes
const (
	ClassProtected       = "protected"
	ClassMultipleParents = "multiple-parents"
	ClassArchived        = "archived"
)

var nonWordRun = regexp.MustCompile(`[\W_]+`)

// TypeIcon returns the table icon for a note type, or "" when the type has none
func TypeIcon(t NoteType) string {
	return noteTypeIcons[t]
}

// NoteTypeClass returns the CSS class for a note type
func NoteTypeClass(t NoteType) string {
	return "type-" + string(t)
}

// MimeTypeClass returns the CSS class for a mime type.
// Parameters after ';' are dropped and non-word runs collapse to '-'.
func MimeTypeClass(mime string) string {
	if idx := strings.IndexByte(mime, ';'); idx != -1 {
		mime = mime[:idx]
	}
	return "mime-" + nonWordRun.ReplaceAllString(strings.ToLower(mime), "-")
}

// Icon derives the icon class of a note. iconClass labels take precedence
// over every other rule. Unknown types yield "".
func Icon(note *Note, hoistedNoteID string) string {
	if iconClass := strings.Join(note.Labels(LabelIconClass), " "); iconClass != "" {
		return iconClass
	}

	switch {
	case note.ID == RootNoteID:
		return IconRoot
	case note.ID == hoistedNoteID:
		return IconHoisted
	case note.Type == NoteTypeText:
		if note.HasChildren() {
			return IconFolder
		}
		return IconNote
	default:
		return TypeIcon(note.Type)
	}
}

// ExtraClasses assembles the space-separated presentational classes of a note
func ExtraClasses(note *Note) string {
	var classes []string

	if note.IsProtected {
		classes = append(classes, ClassProtected)
	}

	if len(note.ParentNoteIDs) > 1 {
		classes = append(classes, ClassMultipleParents)
	}

	if cssClass := note.CSSClass(); cssClass != "" {
		classes = append(classes, cssClass)
	}

	classes = append(classes, NoteTypeClass(note.Type))

	// render notes and some others have no mime
	if note.Mime != "" {
		classes = append(classes, MimeTypeClass(note.Mime))
	}

	if note.HasLabel(LabelArchived) {
		classes = append(classes, ClassArchived)
	}

	return strings.Join(classes, " ")
}
