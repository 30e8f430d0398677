package commands

import (
	"context"
	"slices"

	"notetree/internal/application"
	"notetree/internal/application/tree"
	"notetree/internal/domain"
	"notetree/internal/ports"
)

// InspectResult describes how a note is presented in the tree
type InspectResult struct {
	NoteID          string          `json:"noteId"`
	Title           string          `json:"title"`
	Type            domain.NoteType `json:"type"`
	Kind            string          `json:"kind"`
	Icon            string          `json:"icon"`
	ExtraClasses    string          `json:"extraClasses"`
	ParentNoteIDs   []string        `json:"parentNoteIds"`
	VisibleChildIDs []string        `json:"visibleChildIds"`
	HiddenChildIDs  []string        `json:"hiddenChildIds,omitempty"`
}

// InspectNoteCommand reports the derived presentation of a single note
type InspectNoteCommand struct {
	cache   ports.NoteCache
	builder *tree.Builder
	NoteID  string
}

// NewInspectNoteCommand creates a new InspectNoteCommand
func NewInspectNoteCommand(cache ports.NoteCache, builder *tree.Builder, noteID string) *InspectNoteCommand {
	return &InspectNoteCommand{
		cache:   cache,
		builder: builder,
		NoteID:  noteID,
	}
}

// Validate checks if the command is valid
func (c *InspectNoteCommand) Validate() error {
	return application.ValidateNoteID("noteID", c.NoteID)
}

// Execute runs the inspect command
func (c *InspectNoteCommand) Execute(ctx context.Context) (*InspectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	note, err := getNote(ctx, c.cache, c.NoteID)
	if err != nil {
		return nil, err
	}

	visible, err := c.builder.VisibleChildBranches(note)
	if err != nil {
		return nil, err
	}

	result := &InspectResult{
		NoteID:          note.ID,
		Title:           note.Title,
		Type:            note.Type,
		Kind:            note.Kind().String(),
		Icon:            c.builder.Icon(note),
		ExtraClasses:    c.builder.ExtraClasses(note),
		ParentNoteIDs:   note.ParentNoteIDs,
		VisibleChildIDs: make([]string, 0, len(visible)),
	}

	for _, branch := range visible {
		result.VisibleChildIDs = append(result.VisibleChildIDs, branch.NoteID)
	}
	for _, branch := range c.cache.ChildBranches(note) {
		if !slices.Contains(result.VisibleChildIDs, branch.NoteID) {
			result.HiddenChildIDs = append(result.HiddenChildIDs, branch.NoteID)
		}
	}

	return result, nil
}
