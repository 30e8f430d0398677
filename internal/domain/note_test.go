package domain

import (
	"testing"
)

func TestNoteTypeKind(t *testing.T) {
	tests := []struct {
		noteType NoteType
		want     NoteKind
	}{
		{NoteTypeSearch, KindSearch},
		{NoteTypeText, KindNormal},
		{NoteTypeBook, KindNormal},
		{NoteType("unheard-of"), KindNormal},
	}

	for _, tt := range tests {
		t.Run(string(tt.noteType), func(t *testing.T) {
			if got := tt.noteType.Kind(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNoteAttributes(t *testing.T) {
	note := &Note{
		ID:   "n1",
		Type: NoteTypeText,
		Attributes: []Attribute{
			{Type: AttributeLabel, Name: LabelIconClass, Value: "bx"},
			{Type: AttributeRelation, Name: RelationImageLink, Value: "img1"},
			{Type: AttributeLabel, Name: LabelIconClass, Value: "bx-star"},
			{Type: AttributeLabel, Name: LabelCSSClass, Value: "important"},
			{Type: AttributeRelation, Name: LabelArchived, Value: "x"},
		},
	}

	t.Run("labels keep attribute order", func(t *testing.T) {
		got := note.Labels(LabelIconClass)
		if len(got) != 2 || got[0] != "bx" || got[1] != "bx-star" {
			t.Errorf("unexpected labels: %v", got)
		}
	})

	t.Run("relations ignore labels", func(t *testing.T) {
		got := note.Relations(RelationImageLink)
		if len(got) != 1 || got[0] != "img1" {
			t.Errorf("unexpected relations: %v", got)
		}
		if len(note.Relations(LabelIconClass)) != 0 {
			t.Error("labels must not be reported as relations")
		}
	})

	t.Run("has label only matches labels", func(t *testing.T) {
		if note.HasLabel(LabelArchived) {
			t.Error("a relation named archived is not a label")
		}
		if !note.HasLabel(LabelCSSClass) {
			t.Error("expected cssClass label")
		}
	})

	t.Run("css class", func(t *testing.T) {
		if got := note.CSSClass(); got != "important" {
			t.Errorf("expected important, got %q", got)
		}
		if got := (&Note{}).CSSClass(); got != "" {
			t.Errorf("expected empty css class, got %q", got)
		}
	})
}

func TestNoteHasChildren(t *testing.T) {
	if (&Note{}).HasChildren() {
		t.Error("nil child list has no children")
	}
	if (&Note{ChildBranchIDs: []string{}}).HasChildren() {
		t.Error("empty child list has no children")
	}
	if !(&Note{ChildBranchIDs: []string{"b1"}}).HasChildren() {
		t.Error("expected children")
	}
}
