package application

import "notetree/internal/domain"

// Re-export domain types for use by adapters
type (
	Note        = domain.Note
	Branch      = domain.Branch
	DisplayNode = domain.DisplayNode
	FlatNode    = domain.FlatNode
)

// IsRoot reports whether the note ID is the absolute root sentinel
func IsRoot(noteID string) bool {
	return noteID == domain.RootNoteID
}
