// Package fixture seeds a note store from a YAML description of a note tree.
package fixture

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"notetree/internal/adapters/hoist"
	"notetree/internal/domain"
	"notetree/internal/ports"
)

// Document is the top-level YAML document
type Document struct {
	Hoisted string `yaml:"hoisted,omitempty"`
	Notes   []Note `yaml:"notes"`
}

// Note describes one note and the branches to its children
type Note struct {
	ID        string      `yaml:"id"`
	Title     string      `yaml:"title"`
	Type      string      `yaml:"type"`
	Mime      string      `yaml:"mime,omitempty"`
	Protected bool        `yaml:"protected,omitempty"`
	Labels    []Attribute `yaml:"labels,omitempty"`
	Relations []Attribute `yaml:"relations,omitempty"`
	Children  []Child     `yaml:"children,omitempty"`
}

// Attribute is a label or relation; relation values are note IDs
type Attribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

// Child places a note under its parent
type Child struct {
	Note     string `yaml:"note"`
	Branch   string `yaml:"branch,omitempty"` // defaults to "<parent>_<note>"
	Prefix   string `yaml:"prefix,omitempty"`
	Expanded bool   `yaml:"expanded,omitempty"`
}

// Parse decodes and validates a fixture document
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	seen := make(map[string]bool, len(doc.Notes))
	for i, n := range doc.Notes {
		if n.ID == "" {
			return nil, fmt.Errorf("note #%d: id is required", i+1)
		}
		if n.Type == "" {
			return nil, fmt.Errorf("note %s: type is required", n.ID)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("note %s: duplicate id", n.ID)
		}
		seen[n.ID] = true
	}

	return &doc, nil
}

// ParseFile reads a fixture document from disk
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// NoteSet converts the document into store records. The root note, when
// present, gets the root branch.
func (d *Document) NoteSet() *domain.NoteSet {
	set := &domain.NoteSet{}

	for _, n := range d.Notes {
		note := &domain.Note{
			ID:          n.ID,
			Title:       n.Title,
			Type:        domain.NoteType(n.Type),
			Mime:        n.Mime,
			IsProtected: n.Protected,
		}
		for _, l := range n.Labels {
			note.Attributes = append(note.Attributes, domain.Attribute{
				NoteID: n.ID, Type: domain.AttributeLabel, Name: l.Name, Value: l.Value,
			})
		}
		for _, r := range n.Relations {
			note.Attributes = append(note.Attributes, domain.Attribute{
				NoteID: n.ID, Type: domain.AttributeRelation, Name: r.Name, Value: r.Value,
			})
		}
		set.Notes = append(set.Notes, note)

		if n.ID == domain.RootNoteID {
			set.Branches = append(set.Branches, &domain.Branch{
				ID:           domain.RootBranchID,
				NoteID:       domain.RootNoteID,
				ParentNoteID: domain.NoParentNoteID,
				IsExpanded:   true,
			})
		}

		for i, c := range n.Children {
			branchID := c.Branch
			if branchID == "" {
				branchID = n.ID + "_" + c.Note
			}
			set.Branches = append(set.Branches, &domain.Branch{
				ID:           branchID,
				NoteID:       c.Note,
				ParentNoteID: n.ID,
				Prefix:       c.Prefix,
				IsExpanded:   c.Expanded,
				Position:     (i + 1) * 10,
			})
		}
	}

	return set
}

// Seed writes the document into the store in a single transaction
func Seed(ctx context.Context, store ports.NoteStore, doc *Document) (*domain.NoteSet, error) {
	set := doc.NoteSet()

	tx, err := store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, note := range set.Notes {
		if err := tx.UpsertNote(note); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to write note %s: %w", note.ID, err)
		}
	}
	for _, branch := range set.Branches {
		if err := tx.UpsertBranch(branch); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to write branch %s: %w", branch.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit fixture: %w", err)
	}

	if doc.Hoisted != "" {
		if err := store.SetOption(ctx, hoist.OptionName, doc.Hoisted); err != nil {
			return nil, fmt.Errorf("failed to set hoisted note: %w", err)
		}
	}

	return set, nil
}
