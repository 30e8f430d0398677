package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound             = errors.New("not found")
	ErrOrphanBranch         = errors.New("branch has no note")
	ErrMissingBranch        = errors.New("no branch for hoisted note")
	ErrMissingParent        = errors.New("missing parent note")
	ErrChildListUnavailable = errors.New("child branch list unavailable")
	ErrUnknownNoteKind      = errors.New("unknown note kind")
)

// OrphanBranchError is returned when a branch resolves to no note.
// It indicates a data-integrity problem in the store.
type OrphanBranchError struct {
	BranchID string
	NoteID   string
}

func (e *OrphanBranchError) Error() string {
	return fmt.Sprintf("branch %s has no note %s", e.BranchID, e.NoteID)
}

func (e *OrphanBranchError) Is(target error) bool {
	return target == ErrOrphanBranch
}

// MissingBranchError is returned when the hoisted note cannot be resolved to a branch
type MissingBranchError struct {
	NoteID string
}

func (e *MissingBranchError) Error() string {
	return fmt.Sprintf("no branch found for hoisted note %s", e.NoteID)
}

func (e *MissingBranchError) Is(target error) bool {
	return target == ErrMissingBranch
}

// MissingParentArgumentError is returned when children are requested without a usable parent note
type MissingParentArgumentError struct {
	Operation string
	NoteID    string // may be empty when no note was given at all
}

func (e *MissingParentArgumentError) Error() string {
	if e.NoteID == "" {
		return fmt.Sprintf("%s: parent note is required", e.Operation)
	}
	return fmt.Sprintf("%s: parent note %s could not be resolved", e.Operation, e.NoteID)
}

func (e *MissingParentArgumentError) Is(target error) bool {
	return target == ErrMissingParent
}

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
