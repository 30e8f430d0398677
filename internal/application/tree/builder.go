// Package tree turns cached notes and branches into the lazily expandable
// display nodes consumed by tree widgets.
package tree

import (
	"context"
	"html"

	"notetree/internal/application"
	"notetree/internal/domain"
	"notetree/internal/ports"
)

// ViewContext carries the collaborators a build reads from
type ViewContext struct {
	Cache ports.NoteCache
	Hoist ports.HoistState
}

// Builder assembles display nodes from a ViewContext
type Builder struct {
	view        ViewContext
	concurrency int
	newKey      func() string
}

// Option configures a Builder
type Option func(*Builder)

// WithSiblingConcurrency builds up to n siblings in parallel. Values below 2 build sequentially.
func WithSiblingConcurrency(n int) Option {
	return func(b *Builder) {
		b.concurrency = n
	}
}

// WithKeyGenerator replaces the per-render key generator
func WithKeyGenerator(fn func() string) Option {
	return func(b *Builder) {
		b.newKey = fn
	}
}

// NewBuilder creates a new Builder
func NewBuilder(view ViewContext, opts ...Option) *Builder {
	b := &Builder{
		view:        view,
		concurrency: 1,
		newKey:      RenderKey,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// PrepareRootNode builds the node for the effective root: the absolute root,
// or the first parent branch of the hoisted note.
func (b *Builder) PrepareRootNode(ctx context.Context) (*domain.DisplayNode, error) {
	if err := b.view.Cache.WaitInitialized(ctx); err != nil {
		return nil, err
	}

	hoistedNoteID := b.view.Hoist.HoistedNoteID()

	branch, err := b.hoistedBranch(ctx, hoistedNoteID)
	if err != nil {
		return nil, err
	}

	return b.prepareNode(ctx, branch, hoistedNoteID)
}

func (b *Builder) hoistedBranch(ctx context.Context, hoistedNoteID string) (*domain.Branch, error) {
	if hoistedNoteID == domain.RootNoteID {
		if branch := b.view.Cache.GetBranch(domain.RootBranchID); branch != nil {
			return branch, nil
		}
		return nil, &application.MissingBranchError{NoteID: hoistedNoteID}
	}

	note, err := b.view.Cache.GetNote(ctx, hoistedNoteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, &application.MissingBranchError{NoteID: hoistedNoteID}
	}

	branches, err := b.view.Cache.ParentBranches(ctx, note)
	if err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return nil, &application.MissingBranchError{NoteID: hoistedNoteID}
	}

	// a cloned note shows up under its first parent only
	return branches[0], nil
}

// PrepareNode builds the display node for a single branch, including its
// children when the branch is an expanded folder.
func (b *Builder) PrepareNode(ctx context.Context, branch *domain.Branch) (*domain.DisplayNode, error) {
	return b.prepareNode(ctx, branch, b.view.Hoist.HoistedNoteID())
}

func (b *Builder) prepareNode(ctx context.Context, branch *domain.Branch, hoistedNoteID string) (*domain.DisplayNode, error) {
	note, err := b.view.Cache.GetNote(ctx, branch.NoteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, &application.OrphanBranchError{BranchID: branch.ID, NoteID: branch.NoteID}
	}

	node := &domain.DisplayNode{
		NoteID:       note.ID,
		ParentNoteID: branch.ParentNoteID,
		BranchID:     branch.ID,
		IsProtected:  note.IsProtected,
		NoteType:     note.Type,
		Title:        html.EscapeString(displayTitle(branch, note)),
		ExtraClasses: domain.ExtraClasses(note),
		Icon:         domain.Icon(note, hoistedNoteID),
		RefKey:       note.ID,
		Expanded:     branch.IsExpanded || note.ID == hoistedNoteID,
		Key:          b.newKey(),
	}

	node.Folder = len(b.visibleChildBranches(note)) > 0 || note.Kind() == domain.KindSearch
	node.Lazy = node.Folder && !node.Expanded

	if node.Folder && node.Expanded {
		children, err := b.prepareChildren(ctx, note, hoistedNoteID)
		if err != nil {
			return nil, err
		}
		node.Children = children
	}

	return node, nil
}

func displayTitle(branch *domain.Branch, note *domain.Note) string {
	if branch.Prefix != "" {
		return branch.Prefix + " - " + note.Title
	}
	return note.Title
}
