package ports

import (
	"context"

	"notetree/internal/domain"
)

// NoteCache resolves notes and branches for tree building.
// Notes and branches it returns must not be mutated by callers.
type NoteCache interface {
	// WaitInitialized blocks until the cache has finished its initial load
	WaitInitialized(ctx context.Context) error

	// GetBranch returns a cached branch, or nil if unknown
	GetBranch(branchID string) *domain.Branch

	// GetNote returns a note, fetching it from storage on a cache miss.
	// Unknown notes yield (nil, nil).
	GetNote(ctx context.Context, noteID string) (*domain.Note, error)

	// ReloadNotes forces a refresh of the given notes and their child branches
	ReloadNotes(ctx context.Context, noteIDs []string) error

	// ChildBranches returns the note's child branches in display order.
	// A nil result means the child list is unavailable.
	ChildBranches(note *domain.Note) []*domain.Branch

	// ParentBranches returns the branches linking the note to its parents,
	// in the order reported by the store
	ParentBranches(ctx context.Context, note *domain.Note) ([]*domain.Branch, error)
}
