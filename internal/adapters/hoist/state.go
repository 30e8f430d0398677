// Package hoist tracks which note is currently hoisted as the tree's sub-root.
package hoist

import (
	"context"
	"fmt"
	"sync"

	"notetree/internal/domain"
	"notetree/internal/logger"
	"notetree/internal/ports"
)

// OptionName is the store option holding the hoisted note ID
const OptionName = "hoistedNoteId"

// State implements ports.Hoister, persisting changes to an option store
type State struct {
	options ports.OptionStore

	mu     sync.RWMutex
	noteID string
}

// Ensure State implements Hoister
var _ ports.Hoister = (*State)(nil)

// New creates a State that starts at fallback (root when empty)
func New(options ports.OptionStore, fallback string) *State {
	if fallback == "" {
		fallback = domain.RootNoteID
	}
	return &State{options: options, noteID: fallback}
}

// Load reads the persisted hoisted note, keeping the fallback when none is stored
func (s *State) Load(ctx context.Context) error {
	value, err := s.options.GetOption(ctx, OptionName)
	if err != nil {
		return fmt.Errorf("reading hoisted note: %w", err)
	}
	if value == "" {
		return nil
	}

	s.mu.Lock()
	s.noteID = value
	s.mu.Unlock()
	return nil
}

// HoistedNoteID returns the current hoisted note ID
func (s *State) HoistedNoteID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.noteID
}

// Hoist makes noteID the effective root and persists the choice
func (s *State) Hoist(ctx context.Context, noteID string) error {
	if err := s.options.SetOption(ctx, OptionName, noteID); err != nil {
		return fmt.Errorf("saving hoisted note: %w", err)
	}

	s.mu.Lock()
	s.noteID = noteID
	s.mu.Unlock()

	logger.Debug("hoisted note changed", logger.Fields{"noteId": noteID})
	return nil
}

// Unhoist returns to the absolute root
func (s *State) Unhoist(ctx context.Context) error {
	return s.Hoist(ctx, domain.RootNoteID)
}
