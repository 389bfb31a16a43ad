// Package favorites implements the favorites slice: the current user's
// favorited recipes as a materialized list of full records, kept durable in
// local storage.
//
// Add and Remove are two-phase: the single-item mutation goes to the entity
// store first, then the complete resolved favorites list is re-fetched,
// persisted, and swapped in. Every successful toggle therefore costs an
// extra round-trip but leaves a fully reconciled view; a failure in any
// phase leaves the previous list untouched.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/localstore"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/models"
)

// API is the part of the entity store this slice talks to.
type API interface {
	GetFavorites(ctx context.Context, userID string) ([]models.Recipe, error)
	AddToFavorites(ctx context.Context, userID, recipeID string) (*models.Recipe, error)
	RemoveFromFavorites(ctx context.Context, userID, recipeID string) error
}

// State is the observable slice state.
type State struct {
	Favorites []models.Recipe
	Loading   bool
	// Err holds the message of the last rejected fetch, empty otherwise.
	Err string
}

// Slice owns the favorites state.
type Slice struct {
	mu      sync.Mutex
	api     API
	storage localstore.Repository
	logger  logging.Logger
	state   State
}

func New(api API, storage localstore.Repository, logger logging.Logger) *Slice {
	return &Slice{api: api, storage: storage, logger: logger}
}

// Rehydrate restores the last persisted favorites list, if any. Call once
// at startup. Corrupt data is discarded with a warning.
func (s *Slice) Rehydrate(ctx context.Context) error {
	data, err := s.storage.Get(ctx, localstore.KeyFavorites)
	if err != nil {
		return fmt.Errorf("failed to read persisted favorites: %w", err)
	}
	if data == nil {
		return nil
	}

	var favs []models.Recipe
	if err := json.Unmarshal(data, &favs); err != nil {
		s.logger.Warn(ctx, "discarding corrupt persisted favorites", "error", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Favorites = favs
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Slice) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Favorites: models.CloneRecipes(s.state.Favorites),
		Loading:   s.state.Loading,
		Err:       s.state.Err,
	}
}

// Fetch loads the resolved favorites list for userID, persists it, and
// replaces the in-memory list.
func (s *Slice) Fetch(ctx context.Context, userID string) error {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	favs, err := s.resolveAndPersist(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = err.Error()
		s.logger.Error(ctx, "fetching favorites failed", "user_id", userID, "error", err)
		return err
	}
	s.state.Favorites = favs
	return nil
}

// Add favorites recipeID for userID, then re-fetches and persists the full
// resolved list. On any failure the previous list is left untouched.
func (s *Slice) Add(ctx context.Context, userID, recipeID string) error {
	if _, err := s.api.AddToFavorites(ctx, userID, recipeID); err != nil {
		s.logger.Error(ctx, "adding favorite failed", "recipe_id", recipeID, "error", err)
		return err
	}
	return s.reconcile(ctx, userID)
}

// Remove un-favorites recipeID for userID, then re-fetches and persists the
// full resolved list. On any failure the previous list is left untouched.
func (s *Slice) Remove(ctx context.Context, userID, recipeID string) error {
	if err := s.api.RemoveFromFavorites(ctx, userID, recipeID); err != nil {
		s.logger.Error(ctx, "removing favorite failed", "recipe_id", recipeID, "error", err)
		return err
	}
	return s.reconcile(ctx, userID)
}

// reconcile is the second phase of a toggle: re-fetch, persist, swap in.
func (s *Slice) reconcile(ctx context.Context, userID string) error {
	favs, err := s.resolveAndPersist(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "reconciling favorites failed", "user_id", userID, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Favorites = favs
	return nil
}

func (s *Slice) resolveAndPersist(ctx context.Context, userID string) ([]models.Recipe, error) {
	favs, err := s.api.GetFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(favs)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize favorites: %w", err)
	}
	if err := s.storage.Set(ctx, localstore.KeyFavorites, data); err != nil {
		return nil, fmt.Errorf("failed to persist favorites: %w", err)
	}
	return favs, nil
}
