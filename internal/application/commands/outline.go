package commands

import (
	"fmt"
	"html"
	"io"
	"strings"

	"notetree/internal/domain"
)

// Outline markers
const (
	markerExpanded  = "▾"
	markerCollapsed = "▸"
	markerLeaf      = " "
)

// WriteOutline prints the visible part of a display tree, one node per line
func WriteOutline(w io.Writer, root *domain.DisplayNode) error {
	for _, flat := range root.Flatten() {
		if _, err := fmt.Fprintln(w, OutlineLine(flat)); err != nil {
			return err
		}
	}
	return nil
}

// WriteNodes prints sibling nodes as a flat list, without descending
func WriteNodes(w io.Writer, nodes []*domain.DisplayNode) error {
	for _, node := range nodes {
		if _, err := fmt.Fprintln(w, OutlineLine(domain.FlatNode{Node: node})); err != nil {
			return err
		}
	}
	return nil
}

// OutlineLine formats one node: indentation, folder marker, title and note ID
func OutlineLine(flat domain.FlatNode) string {
	node := flat.Node

	marker := markerLeaf
	switch {
	case node.Folder && node.Expanded:
		marker = markerExpanded
	case node.Folder:
		marker = markerCollapsed
	}

	return fmt.Sprintf("%s%s %s  [%s]", strings.Repeat("  ", flat.Depth), marker, html.UnescapeString(node.Title), node.NoteID)
}
