package styles

import (
	"github.com/charmbracelet/lipgloss"

	"notetree/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Note type colors
	TypeBook   = lipgloss.Color("#6366F1") // Indigo
	TypeCode   = lipgloss.Color("#60A5FA") // Blue
	TypeSearch = lipgloss.Color("#F97316") // Orange
	TypeMedia  = lipgloss.Color("#EC4899") // Pink

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tree node styles
	NodeFolder = lipgloss.NewStyle().
			Bold(true)

	NodeNote = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeArchived = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	NodeProtected = lipgloss.NewStyle().
			Foreground(Warning)

	NodeID = lipgloss.NewStyle().
		Foreground(Muted)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// TypeColor returns the accent color for a note type
func TypeColor(t domain.NoteType) lipgloss.Color {
	switch t {
	case domain.NoteTypeBook:
		return TypeBook
	case domain.NoteTypeCode, domain.NoteTypeRender:
		return TypeCode
	case domain.NoteTypeSearch:
		return TypeSearch
	case domain.NoteTypeImage, domain.NoteTypeFile, domain.NoteTypeRelationMap:
		return TypeMedia
	default:
		return Secondary
	}
}
