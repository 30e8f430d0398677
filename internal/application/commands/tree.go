package commands

import (
	"context"
	"fmt"

	"notetree/internal/application"
	"notetree/internal/application/tree"
	"notetree/internal/domain"
	"notetree/internal/ports"
)

// BuildRootCommand builds the display tree from the effective root
type BuildRootCommand struct {
	cache   ports.NoteCache
	builder *tree.Builder
	// Depth expands collapsed folders down to this many levels below the root.
	// Zero keeps the tree exactly as the stored expansion state dictates.
	Depth int
}

// NewBuildRootCommand creates a new BuildRootCommand
func NewBuildRootCommand(cache ports.NoteCache, builder *tree.Builder, depth int) *BuildRootCommand {
	return &BuildRootCommand{
		cache:   cache,
		builder: builder,
		Depth:   depth,
	}
}

// Validate checks if the command is valid
func (c *BuildRootCommand) Validate() error {
	if c.Depth < 0 {
		return &application.ValidationError{
			Field:   "depth",
			Message: fmt.Sprintf("depth must not be negative, got: %d", c.Depth),
		}
	}
	return nil
}

// Execute runs the build root command
func (c *BuildRootCommand) Execute(ctx context.Context) (*domain.DisplayNode, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	root, err := c.builder.PrepareRootNode(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.expand(ctx, root, c.Depth); err != nil {
		return nil, err
	}
	return root, nil
}

func (c *BuildRootCommand) expand(ctx context.Context, node *domain.DisplayNode, depth int) error {
	if depth <= 0 || !node.Folder {
		return nil
	}

	if !node.Expanded {
		children, err := expandNote(ctx, c.cache, c.builder, node.NoteID)
		if err != nil {
			return err
		}
		node.SetChildren(children)
	}

	for _, child := range node.Children {
		if err := c.expand(ctx, child, depth-1); err != nil {
			return err
		}
	}
	return nil
}

// ExpandNoteCommand builds the children of a collapsed note
type ExpandNoteCommand struct {
	cache   ports.NoteCache
	builder *tree.Builder
	NoteID  string
}

// NewExpandNoteCommand creates a new ExpandNoteCommand
func NewExpandNoteCommand(cache ports.NoteCache, builder *tree.Builder, noteID string) *ExpandNoteCommand {
	return &ExpandNoteCommand{
		cache:   cache,
		builder: builder,
		NoteID:  noteID,
	}
}

// Validate checks if the command is valid
func (c *ExpandNoteCommand) Validate() error {
	return application.ValidateNoteID("noteID", c.NoteID)
}

// Execute runs the expand command
func (c *ExpandNoteCommand) Execute(ctx context.Context) ([]*domain.DisplayNode, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return expandNote(ctx, c.cache, c.builder, c.NoteID)
}

func expandNote(ctx context.Context, cache ports.NoteCache, builder *tree.Builder, noteID string) ([]*domain.DisplayNode, error) {
	note, err := getNote(ctx, cache, noteID)
	if err != nil {
		return nil, err
	}
	return builder.PrepareBranch(ctx, note)
}

func getNote(ctx context.Context, cache ports.NoteCache, noteID string) (*domain.Note, error) {
	if err := cache.WaitInitialized(ctx); err != nil {
		return nil, err
	}

	note, err := cache.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("note %s: %w", noteID, application.ErrNotFound)
	}
	return note, nil
}
