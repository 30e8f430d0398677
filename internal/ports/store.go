package ports

import (
	"context"

	"notetree/internal/domain"
)

// OptionStore persists named view options such as the hoisted note
type OptionStore interface {
	// GetOption returns the option value, "" when unset
	GetOption(ctx context.Context, name string) (string, error)
	SetOption(ctx context.Context, name, value string) error
}

// NoteStore is the persistent source of notes and branches behind the cache
type NoteStore interface {
	OptionStore

	// LoadAll reads every note (with attributes) and every branch
	LoadAll(ctx context.Context) (*domain.NoteSet, error)

	// LoadNotes reads the given notes with their attributes, plus all
	// branches in which they appear as child or parent
	LoadNotes(ctx context.Context, noteIDs []string) (*domain.NoteSet, error)

	// Batch updates
	BeginTx(ctx context.Context) (StoreTx, error)

	Close() error
}

// StoreTx represents a transaction for atomic store updates
type StoreTx interface {
	// UpsertNote writes the note and replaces its attributes
	UpsertNote(note *domain.Note) error
	UpsertBranch(branch *domain.Branch) error
	DeleteBranch(branchID string) error

	// Transaction control
	Commit() error
	Rollback() error
}
