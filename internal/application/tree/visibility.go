package tree

import (
	"slices"

	"notetree/internal/application"
	"notetree/internal/domain"
	"notetree/internal/logger"
)

// VisibleChildBranches returns the note's child branches minus those whose
// note is embedded in the parent through an imageLink relation.
func (b *Builder) VisibleChildBranches(note *domain.Note) ([]*domain.Branch, error) {
	if note == nil {
		return nil, &application.MissingParentArgumentError{Operation: "visible child branches"}
	}
	return b.visibleChildBranches(note), nil
}

func (b *Builder) visibleChildBranches(note *domain.Note) []*domain.Branch {
	childBranches := b.view.Cache.ChildBranches(note)
	if childBranches == nil {
		logger.Error("No children for note, this shouldn't happen", application.ErrChildListUnavailable,
			logger.Fields{"noteId": note.ID})
		return []*domain.Branch{}
	}

	imageLinks := note.Relations(domain.RelationImageLink)
	if len(imageLinks) == 0 {
		return childBranches
	}

	// an embedded image is already visible in the parent's content
	visible := make([]*domain.Branch, 0, len(childBranches))
	for _, branch := range childBranches {
		if !slices.Contains(imageLinks, branch.NoteID) {
			visible = append(visible, branch)
		}
	}
	return visible
}
