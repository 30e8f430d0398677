package sqlite

import (
	"database/sql"

	"notetree/internal/domain"
	"notetree/internal/ports"
)

// storeTx implements ports.StoreTx
type storeTx struct {
	tx *sql.Tx
}

// Ensure storeTx implements StoreTx
var _ ports.StoreTx = (*storeTx)(nil)

// UpsertNote inserts or updates a note and replaces its attributes
func (t *storeTx) UpsertNote(note *domain.Note) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO notes (note_id, title, type, mime, is_protected)
		VALUES (?, ?, ?, ?, ?)
	`, note.ID, note.Title, string(note.Type), note.Mime, note.IsProtected)
	if err != nil {
		return err
	}

	if _, err := t.tx.Exec(`DELETE FROM attributes WHERE note_id = ?`, note.ID); err != nil {
		return err
	}

	for i, attr := range note.Attributes {
		_, err := t.tx.Exec(`
			INSERT INTO attributes (note_id, type, name, value, position)
			VALUES (?, ?, ?, ?, ?)
		`, note.ID, string(attr.Type), attr.Name, attr.Value, i*10)
		if err != nil {
			return err
		}
	}
	return nil
}

// UpsertBranch inserts or updates a branch
func (t *storeTx) UpsertBranch(branch *domain.Branch) error {
	_, err := t.tx.Exec(`
		INSERT INTO branches (branch_id, note_id, parent_note_id, prefix, is_expanded, position)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(branch_id) DO UPDATE SET
			note_id = excluded.note_id,
			parent_note_id = excluded.parent_note_id,
			prefix = excluded.prefix,
			is_expanded = excluded.is_expanded,
			position = excluded.position
	`, branch.ID, branch.NoteID, branch.ParentNoteID, branch.Prefix, branch.IsExpanded, branch.Position)
	return err
}

// DeleteBranch removes a branch by ID
func (t *storeTx) DeleteBranch(branchID string) error {
	_, err := t.tx.Exec(`DELETE FROM branches WHERE branch_id = ?`, branchID)
	return err
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *storeTx) Rollback() error {
	return t.tx.Rollback()
}
