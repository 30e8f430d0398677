package ports

import "context"

// HoistState exposes the currently hoisted note
type HoistState interface {
	// HoistedNoteID returns the hoisted note ID, domain.RootNoteID when nothing is hoisted
	HoistedNoteID() string
}

// Hoister changes the hoisted note
type Hoister interface {
	HoistState
	Hoist(ctx context.Context, noteID string) error
	Unhoist(ctx context.Context) error
}
