package tree

import (
	"strings"

	"github.com/google/uuid"

	"notetree/internal/domain"
)

const renderKeyLength = 12

// ExtraClasses returns the space-separated presentational classes of a note
func (b *Builder) ExtraClasses(note *domain.Note) string {
	return domain.ExtraClasses(note)
}

// Icon returns the icon class of a note under the current hoist state
func (b *Builder) Icon(note *domain.Note) string {
	return domain.Icon(note, b.view.Hoist.HoistedNoteID())
}

// RenderKey returns a fresh 12-character random key for a display node
func RenderKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:renderKeyLength]
}
