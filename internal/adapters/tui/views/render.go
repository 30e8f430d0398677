package views

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"notetree/internal/adapters/tui/styles"
	"notetree/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// NodeText returns the plain label of a display node. Titles arrive HTML-escaped.
func NodeText(node *domain.DisplayNode) string {
	return html.UnescapeString(node.Title)
}

// RenderNode renders one tree line; depth is relative to the first visible level
func RenderNode(flat domain.FlatNode, depth int, selected bool) string {
	node := flat.Node
	indent := strings.Repeat("  ", depth)

	// Prefix (expand indicator)
	var prefix string
	switch {
	case !node.Folder:
		prefix = styles.TreeLeaf
	case node.Expanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := NodeText(node)
	if selected {
		return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), styles.NodeSelected.Render(text))
	}

	return fmt.Sprintf("%s%s%s %s", indent, styles.TreeBranch.Render(prefix), nodeStyle(node).Render(text),
		styles.NodeID.Render(node.NoteID))
}

func nodeStyle(node *domain.DisplayNode) lipgloss.Style {
	switch {
	case slices.Contains(strings.Fields(node.ExtraClasses), domain.ClassArchived):
		return styles.NodeArchived
	case node.IsProtected:
		return styles.NodeProtected
	case node.Folder:
		return styles.NodeFolder.Foreground(styles.TypeColor(node.NoteType))
	default:
		return styles.NodeNote.Foreground(styles.TypeColor(node.NoteType))
	}
}
