package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"notetree/internal/domain"
	"notetree/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.NoteStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements NoteStore
var _ ports.NoteStore = (*Store)(nil)

// Open opens (creating if needed) the note database at dbPath
func Open(dbPath string) (*Store, error) {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL lets the TUI read while the CLI seeds
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=off")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS notes (
			note_id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			mime TEXT NOT NULL DEFAULT '',
			is_protected INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS branches (
			branch_id TEXT PRIMARY KEY,
			note_id TEXT NOT NULL,
			parent_note_id TEXT NOT NULL,
			prefix TEXT NOT NULL DEFAULT '',
			is_expanded INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS attributes (
			note_id TEXT NOT NULL,
			type TEXT NOT NULL,
			name TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS options (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_branches_note ON branches(note_id);
		CREATE INDEX IF NOT EXISTS idx_branches_parent ON branches(parent_note_id);
		CREATE INDEX IF NOT EXISTS idx_attributes_note ON attributes(note_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.SetOption(context.Background(), "schemaVersion", schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return s, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetOption returns a stored option, "" when unset
func (s *Store) GetOption(ctx context.Context, name string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM options WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetOption stores an option value
func (s *Store) SetOption(ctx context.Context, name, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO options (name, value) VALUES (?, ?)`, name, value)
	return err
}

// LoadAll reads every note with its attributes and every branch
func (s *Store) LoadAll(ctx context.Context) (*domain.NoteSet, error) {
	notes, err := s.queryNotes(ctx, `
		SELECT note_id, title, type, mime, is_protected FROM notes ORDER BY note_id
	`)
	if err != nil {
		return nil, err
	}

	if err := s.attachAttributes(ctx, notes, `
		SELECT note_id, type, name, value, position FROM attributes ORDER BY note_id, position
	`); err != nil {
		return nil, err
	}

	branches, err := s.queryBranches(ctx, `
		SELECT branch_id, note_id, parent_note_id, prefix, is_expanded, position
		FROM branches ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}

	return &domain.NoteSet{Notes: notes, Branches: branches}, nil
}

// LoadNotes reads the given notes and all branches in which they appear
func (s *Store) LoadNotes(ctx context.Context, noteIDs []string) (*domain.NoteSet, error) {
	if len(noteIDs) == 0 {
		return &domain.NoteSet{}, nil
	}

	in, args := inClause(noteIDs)

	notes, err := s.queryNotes(ctx, `
		SELECT note_id, title, type, mime, is_protected FROM notes
		WHERE note_id IN `+in+` ORDER BY note_id
	`, args...)
	if err != nil {
		return nil, err
	}

	if err := s.attachAttributes(ctx, notes, `
		SELECT note_id, type, name, value, position FROM attributes
		WHERE note_id IN `+in+` ORDER BY note_id, position
	`, args...); err != nil {
		return nil, err
	}

	branches, err := s.queryBranches(ctx, `
		SELECT branch_id, note_id, parent_note_id, prefix, is_expanded, position
		FROM branches
		WHERE note_id IN `+in+` OR parent_note_id IN `+in+`
		ORDER BY rowid
	`, append(args, args...)...)
	if err != nil {
		return nil, err
	}

	return &domain.NoteSet{Notes: notes, Branches: branches}, nil
}

// BeginTx starts a new transaction
func (s *Store) BeginTx(ctx context.Context) (ports.StoreTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx}, nil
}

func (s *Store) queryNotes(ctx context.Context, query string, args ...interface{}) ([]*domain.Note, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		var noteType string
		if err := rows.Scan(&n.ID, &n.Title, &noteType, &n.Mime, &n.IsProtected); err != nil {
			return nil, err
		}
		n.Type = domain.NoteType(noteType)
		notes = append(notes, &n)
	}

	return notes, rows.Err()
}

func (s *Store) attachAttributes(ctx context.Context, notes []*domain.Note, query string, args ...interface{}) error {
	byID := make(map[string]*domain.Note, len(notes))
	for _, n := range notes {
		byID[n.ID] = n
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Attribute
		var attrType string
		if err := rows.Scan(&a.NoteID, &attrType, &a.Name, &a.Value, &a.Position); err != nil {
			return err
		}
		a.Type = domain.AttributeType(attrType)
		if n, ok := byID[a.NoteID]; ok {
			n.Attributes = append(n.Attributes, a)
		}
	}

	return rows.Err()
}

func (s *Store) queryBranches(ctx context.Context, query string, args ...interface{}) ([]*domain.Branch, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*domain.Branch
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.NoteID, &b.ParentNoteID, &b.Prefix, &b.IsExpanded, &b.Position); err != nil {
			return nil, err
		}
		branches = append(branches, &b)
	}

	return branches, rows.Err()
}

// inClause returns "(?, ?, ...)" and the matching arguments
func inClause(ids []string) (string, []interface{}) {
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return "(" + strings.Join(placeholders, ", ") + ")", args
}
