// Package cache keeps an in-memory, copy-on-write view of the note store.
package cache

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"notetree/internal/domain"
	"notetree/internal/logger"
	"notetree/internal/ports"
)

// Cache implements ports.NoteCache over a ports.NoteStore.
// Published notes and branches are never mutated; updates replace them.
type Cache struct {
	store ports.NoteStore

	mu       sync.RWMutex
	notes    map[string]*domain.Note
	branches map[string]*domain.Branch
	seq      map[string]uint64 // first-seen order of branches
	nextSeq  uint64

	initialized chan struct{}
	initOnce    sync.Once
	initErr     error

	loads singleflight.Group
}

// Ensure Cache implements NoteCache
var _ ports.NoteCache = (*Cache)(nil)

// New creates an empty cache over the store. Call Load to initialize it.
func New(store ports.NoteStore) *Cache {
	return &Cache{
		store:       store,
		notes:       make(map[string]*domain.Note),
		branches:    make(map[string]*domain.Branch),
		seq:         make(map[string]uint64),
		initialized: make(chan struct{}),
	}
}

// Load reads the whole store and signals readiness. Only the first call has any effect.
func (c *Cache) Load(ctx context.Context) error {
	c.initOnce.Do(func() {
		defer close(c.initialized)

		set, err := c.store.LoadAll(ctx)
		if err != nil {
			c.initErr = fmt.Errorf("loading note cache: %w", err)
			return
		}

		c.mu.Lock()
		c.apply(set, nil)
		c.mu.Unlock()

		logger.Debug("note cache loaded", logger.Fields{
			"notes":    len(set.Notes),
			"branches": len(set.Branches),
		})
	})
	return c.initErr
}

// WaitInitialized blocks until Load has completed or ctx is done
func (c *Cache) WaitInitialized(ctx context.Context) error {
	select {
	case <-c.initialized:
		return c.initErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetBranch returns a cached branch, or nil if unknown
func (c *Cache) GetBranch(branchID string) *domain.Branch {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.branches[branchID]
}

// GetNote returns a cached note, loading it from the store on a miss
func (c *Cache) GetNote(ctx context.Context, noteID string) (*domain.Note, error) {
	c.mu.RLock()
	note, ok := c.notes[noteID]
	c.mu.RUnlock()
	if ok {
		return note, nil
	}

	if err := c.reload(ctx, noteID); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notes[noteID], nil
}

// ReloadNotes refreshes the given notes and their branches from the store.
// Concurrent reloads of the same note share a single store read.
func (c *Cache) ReloadNotes(ctx context.Context, noteIDs []string) error {
	for _, id := range noteIDs {
		if err := c.reload(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) reload(ctx context.Context, noteID string) error {
	_, err, _ := c.loads.Do(noteID, func() (interface{}, error) {
		set, err := c.store.LoadNotes(ctx, []string{noteID})
		if err != nil {
			return nil, fmt.Errorf("reloading note %s: %w", noteID, err)
		}

		c.mu.Lock()
		c.apply(set, []string{noteID})
		c.mu.Unlock()

		logger.Debug("note reloaded", logger.Fields{
			"noteId":   noteID,
			"found":    len(set.Notes) > 0,
			"branches": len(set.Branches),
		})
		return nil, nil
	})
	return err
}

// ChildBranches returns the note's child branches in position order
func (c *Cache) ChildBranches(note *domain.Note) []*domain.Branch {
	if note.ChildBranchIDs == nil {
		return nil
	}
	return c.resolveBranches(note.ChildBranchIDs)
}

// ParentBranches returns the branches placing the note under its parents
func (c *Cache) ParentBranches(_ context.Context, note *domain.Note) ([]*domain.Branch, error) {
	return c.resolveBranches(note.ParentBranchIDs), nil
}

func (c *Cache) resolveBranches(ids []string) []*domain.Branch {
	c.mu.RLock()
	defer c.mu.RUnlock()

	branches := make([]*domain.Branch, 0, len(ids))
	for _, id := range ids {
		if branch, ok := c.branches[id]; ok {
			branches = append(branches, branch)
		}
	}
	return branches
}

// apply merges a store read into the cache. When replaced is non-nil, those
// notes and every branch touching them are dropped first, so branches the
// store no longer reports disappear. Caller must hold the write lock.
func (c *Cache) apply(set *domain.NoteSet, replaced []string) {
	if len(replaced) > 0 {
		for id, branch := range c.branches {
			if slices.Contains(replaced, branch.NoteID) || slices.Contains(replaced, branch.ParentNoteID) {
				delete(c.branches, id)
			}
		}
		for _, id := range replaced {
			delete(c.notes, id)
		}
	}

	for _, branch := range set.Branches {
		b := *branch
		c.branches[b.ID] = &b
		if _, ok := c.seq[b.ID]; !ok {
			c.seq[b.ID] = c.nextSeq
			c.nextSeq++
		}
	}
	for _, note := range set.Notes {
		n := *note
		c.notes[n.ID] = &n
	}

	c.relink()
}

// relink rebuilds parent/child references on fresh copies of every note
func (c *Cache) relink() {
	children := make(map[string][]*domain.Branch)
	parents := make(map[string][]*domain.Branch)
	for _, branch := range c.branches {
		children[branch.ParentNoteID] = append(children[branch.ParentNoteID], branch)
		parents[branch.NoteID] = append(parents[branch.NoteID], branch)
	}

	for id, note := range c.notes {
		childBranches := children[id]
		slices.SortFunc(childBranches, func(a, b *domain.Branch) int {
			return cmp.Or(cmp.Compare(a.Position, b.Position), cmp.Compare(c.seq[a.ID], c.seq[b.ID]))
		})
		parentBranches := parents[id]
		slices.SortFunc(parentBranches, func(a, b *domain.Branch) int {
			return cmp.Compare(c.seq[a.ID], c.seq[b.ID])
		})

		n := *note
		n.ChildBranchIDs = make([]string, 0, len(childBranches))
		for _, branch := range childBranches {
			n.ChildBranchIDs = append(n.ChildBranchIDs, branch.ID)
		}
		n.ParentBranchIDs = make([]string, 0, len(parentBranches))
		n.ParentNoteIDs = make([]string, 0, len(parentBranches))
		for _, branch := range parentBranches {
			n.ParentBranchIDs = append(n.ParentBranchIDs, branch.ID)
			n.ParentNoteIDs = append(n.ParentNoteIDs, branch.ParentNoteID)
		}
		c.notes[id] = &n
	}
}
