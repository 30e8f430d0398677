package commands

import (
	"context"
	"fmt"

	"notetree/internal/application"
	"notetree/internal/domain"
	"notetree/internal/ports"
)

// HoistResult contains the result of a hoist operation
type HoistResult struct {
	NoteID  string
	Message string
}

// HoistNoteCommand makes a note the effective root, or returns to the absolute root
type HoistNoteCommand struct {
	cache   ports.NoteCache
	hoister ports.Hoister
	NoteID  string
	Clear   bool
}

// NewHoistNoteCommand creates a new HoistNoteCommand
func NewHoistNoteCommand(cache ports.NoteCache, hoister ports.Hoister, noteID string, clear bool) *HoistNoteCommand {
	return &HoistNoteCommand{
		cache:   cache,
		hoister: hoister,
		NoteID:  noteID,
		Clear:   clear,
	}
}

// Validate checks if the command is valid
func (c *HoistNoteCommand) Validate() error {
	if c.Clear {
		if c.NoteID != "" {
			return &application.ValidationError{
				Field:   "noteID",
				Message: "cannot hoist a note and clear the hoist at once",
			}
		}
		return nil
	}
	return application.ValidateNoteID("noteID", c.NoteID)
}

// Execute runs the hoist command
func (c *HoistNoteCommand) Execute(ctx context.Context) (*HoistResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Clear || application.IsRoot(c.NoteID) {
		if err := c.hoister.Unhoist(ctx); err != nil {
			return nil, err
		}
		return &HoistResult{NoteID: domain.RootNoteID, Message: "Unhoisted, showing the whole tree"}, nil
	}

	note, err := getNote(ctx, c.cache, c.NoteID)
	if err != nil {
		return nil, err
	}

	// a hoisted note is shown through one of its parent branches
	parents, err := c.cache.ParentBranches(ctx, note)
	if err != nil {
		return nil, err
	}
	if len(parents) == 0 {
		return nil, &application.MissingBranchError{NoteID: note.ID}
	}

	if err := c.hoister.Hoist(ctx, note.ID); err != nil {
		return nil, err
	}

	return &HoistResult{
		NoteID:  note.ID,
		Message: fmt.Sprintf("Hoisted %s (%s)", note.ID, note.Title),
	}, nil
}
