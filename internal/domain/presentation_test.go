package domain

import (
	"testing"
)

func label(name, value string) Attribute {
	return Attribute{Type: AttributeLabel, Name: name, Value: value}
}

func TestMimeTypeClass(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"text/html", "mime-text-html"},
		{"application/javascript;env=frontend", "mime-application-javascript"},
		{"text/x-c++src", "mime-text-x-c-src"},
		{"Image/PNG", "mime-image-png"},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			if got := MimeTypeClass(tt.mime); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		name    string
		note    *Note
		hoisted string
		want    string
	}{
		{
			name:    "icon class label wins over root",
			note:    &Note{ID: RootNoteID, Type: NoteTypeText, Attributes: []Attribute{label(LabelIconClass, "bx bx-home")}},
			hoisted: RootNoteID,
			want:    "bx bx-home",
		},
		{
			name:    "multiple icon class labels are joined",
			note:    &Note{ID: "n1", Type: NoteTypeCode, Attributes: []Attribute{label(LabelIconClass, "bx"), label(LabelIconClass, "bx-star")}},
			hoisted: "n1",
			want:    "bx bx-star",
		},
		{
			name:    "root",
			note:    &Note{ID: RootNoteID, Type: NoteTypeText, ChildBranchIDs: []string{"a"}},
			hoisted: "other",
			want:    IconRoot,
		},
		{
			name:    "hoisted",
			note:    &Note{ID: "n1", Type: NoteTypeBook},
			hoisted: "n1",
			want:    IconHoisted,
		},
		{
			name: "text with children",
			note: &Note{ID: "n1", Type: NoteTypeText, ChildBranchIDs: []string{"a"}},
			want: IconFolder,
		},
		{
			name: "text without children",
			note: &Note{ID: "n1", Type: NoteTypeText, ChildBranchIDs: []string{}},
			want: IconNote,
		},
		{
			name: "table lookup",
			note: &Note{ID: "n1", Type: NoteTypeRelationMap},
			want: "bx bx-map-alt",
		},
		{
			name: "search",
			note: &Note{ID: "n1", Type: NoteTypeSearch},
			want: "bx bx-file-find",
		},
		{
			name: "unknown type has no icon",
			note: &Note{ID: "n1", Type: NoteType("canvas")},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Icon(tt.note, tt.hoisted); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtraClasses(t *testing.T) {
	t.Run("all classes in order", func(t *testing.T) {
		note := &Note{
			ID:            "n1",
			Type:          NoteTypeCode,
			Mime:          "application/json",
			IsProtected:   true,
			ParentNoteIDs: []string{"p1", "p2"},
			Attributes: []Attribute{
				label(LabelArchived, ""),
				label(LabelCSSClass, "highlight"),
			},
		}

		want := "protected multiple-parents highlight type-code mime-application-json archived"
		if got := ExtraClasses(note); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("minimal note", func(t *testing.T) {
		note := &Note{ID: "n1", Type: NoteTypeRender, ParentNoteIDs: []string{"p1"}}
		if got := ExtraClasses(note); got != "type-render" {
			t.Errorf("expected type-render, got %q", got)
		}
	})
}
