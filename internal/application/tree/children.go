package tree

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"notetree/internal/application"
	"notetree/internal/domain"
)

// PrepareBranch builds the children of a previously collapsed node.
// It is the entry point for lazy expansion.
func (b *Builder) PrepareBranch(ctx context.Context, note *domain.Note) ([]*domain.DisplayNode, error) {
	return b.PrepareChildren(ctx, note)
}

// PrepareChildren builds the display nodes for the note's visible children,
// in the order reported by the cache.
func (b *Builder) PrepareChildren(ctx context.Context, note *domain.Note) ([]*domain.DisplayNode, error) {
	return b.prepareChildren(ctx, note, b.view.Hoist.HoistedNoteID())
}

func (b *Builder) prepareChildren(ctx context.Context, note *domain.Note, hoistedNoteID string) ([]*domain.DisplayNode, error) {
	if note == nil {
		return nil, &application.MissingParentArgumentError{Operation: "prepare children"}
	}

	switch kind := note.Kind(); kind {
	case domain.KindSearch:
		return b.prepareSearchChildren(ctx, note, hoistedNoteID)
	case domain.KindNormal:
		return b.prepareNormalChildren(ctx, note, hoistedNoteID)
	default:
		return nil, fmt.Errorf("note %s: %w: %s", note.ID, application.ErrUnknownNoteKind, kind)
	}
}

// prepareSearchChildren refreshes the search note so that its result
// branches are current, then lists them like normal children.
func (b *Builder) prepareSearchChildren(ctx context.Context, note *domain.Note, hoistedNoteID string) ([]*domain.DisplayNode, error) {
	if err := b.view.Cache.ReloadNotes(ctx, []string{note.ID}); err != nil {
		return nil, fmt.Errorf("reloading search note %s: %w", note.ID, err)
	}

	refreshed, err := b.view.Cache.GetNote(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return nil, &application.MissingParentArgumentError{Operation: "prepare search children", NoteID: note.ID}
	}

	return b.prepareNormalChildren(ctx, refreshed, hoistedNoteID)
}

func (b *Builder) prepareNormalChildren(ctx context.Context, parent *domain.Note, hoistedNoteID string) ([]*domain.DisplayNode, error) {
	if parent == nil {
		return nil, &application.MissingParentArgumentError{Operation: "prepare children"}
	}

	branches := b.visibleChildBranches(parent)
	nodes := make([]*domain.DisplayNode, len(branches))

	if b.concurrency < 2 || len(branches) < 2 {
		for i, branch := range branches {
			node, err := b.prepareNode(ctx, branch, hoistedNoteID)
			if err != nil {
				return nil, err
			}
			nodes[i] = node
		}
		return nodes, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, branch := range branches {
		g.Go(func() error {
			node, err := b.prepareNode(gctx, branch, hoistedNoteID)
			if err != nil {
				return err
			}
			nodes[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return nodes, nil
}
