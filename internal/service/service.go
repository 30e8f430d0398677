// Package service wires the note store, cache, hoist state and tree builder
// shared by the notetree binaries.
package service

import (
	"context"
	"fmt"

	"notetree/internal/adapters/cache"
	"notetree/internal/adapters/hoist"
	"notetree/internal/adapters/sqlite"
	"notetree/internal/application/commands"
	"notetree/internal/application/tree"
	"notetree/internal/config"
	"notetree/internal/domain"
	"notetree/internal/logger"
)

// Service is the assembled notetree backend
type Service struct {
	Config  *config.Config
	Store   *sqlite.Store
	Cache   *cache.Cache
	Hoist   *hoist.State
	Builder *tree.Builder
}

// New opens the store and restores the hoist state. The cache starts empty;
// call Load (or Start) before building nodes.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	state := hoist.New(store, cfg.HoistedNoteID)
	if err := state.Load(ctx); err != nil {
		store.Close()
		return nil, err
	}

	noteCache := cache.New(store)
	builder := tree.NewBuilder(
		tree.ViewContext{Cache: noteCache, Hoist: state},
		tree.WithSiblingConcurrency(cfg.SiblingConcurrency),
	)

	return &Service{
		Config:  cfg,
		Store:   store,
		Cache:   noteCache,
		Hoist:   state,
		Builder: builder,
	}, nil
}

// Load fills the cache from the store and blocks until it is ready
func (s *Service) Load(ctx context.Context) error {
	return s.Cache.Load(ctx)
}

// Start fills the cache in the background. Builds wait for it to finish.
func (s *Service) Start(ctx context.Context) {
	go func() {
		if err := s.Cache.Load(ctx); err != nil {
			logger.Error("failed to load note cache", err, logger.Fields{"dbPath": s.Store.Path()})
		}
	}()
}

// Close releases the store
func (s *Service) Close() error {
	return s.Store.Close()
}

// BuildRoot returns the display tree, expanding collapsed folders down to depth
func (s *Service) BuildRoot(ctx context.Context, depth int) (*domain.DisplayNode, error) {
	return commands.NewBuildRootCommand(s.Cache, s.Builder, depth).Execute(ctx)
}

// Expand returns the children of a collapsed note
func (s *Service) Expand(ctx context.Context, noteID string) ([]*domain.DisplayNode, error) {
	return commands.NewExpandNoteCommand(s.Cache, s.Builder, noteID).Execute(ctx)
}

// Inspect describes how a note is presented in the tree
func (s *Service) Inspect(ctx context.Context, noteID string) (*commands.InspectResult, error) {
	return commands.NewInspectNoteCommand(s.Cache, s.Builder, noteID).Execute(ctx)
}

// SetHoist hoists noteID, or returns to the absolute root when clear is set
func (s *Service) SetHoist(ctx context.Context, noteID string, clear bool) (*commands.HoistResult, error) {
	return commands.NewHoistNoteCommand(s.Cache, s.Hoist, noteID, clear).Execute(ctx)
}
