package recipes

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/models"
)

// API is the part of the entity store this slice talks to.
type API interface {
	GetRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipeByID(ctx context.Context, id string) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, data models.Recipe) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, data models.Recipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// State is the observable slice state. Snapshot returns a deep copy, so
// holders of a State can never mutate the slice through it.
type State struct {
	// Recipes is the full collection in store order.
	Recipes []models.Recipe
	// Filtered is the derived view matching SearchTerm.
	Filtered []models.Recipe
	// Current is the currently viewed recipe, nil when none.
	Current *models.Recipe
	Loading bool
	// Err holds the message of the last rejected fetch, empty otherwise.
	Err        string
	SearchTerm string
}

// Slice owns the recipe collection state.
type Slice struct {
	mu     sync.Mutex
	api    API
	logger logging.Logger
	state  State
}

func New(api API, logger logging.Logger) *Slice {
	return &Slice{api: api, logger: logger}
}

// Snapshot returns a deep copy of the current state.
func (s *Slice) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Recipes:    models.CloneRecipes(s.state.Recipes),
		Filtered:   models.CloneRecipes(s.state.Filtered),
		Current:    s.state.Current.Clone(),
		Loading:    s.state.Loading,
		Err:        s.state.Err,
		SearchTerm: s.state.SearchTerm,
	}
}

// Matches reports whether the recipe title or any ingredient contains term,
// case-insensitively. The empty term matches everything.
func Matches(r *models.Recipe, term string) bool {
	t := strings.ToLower(term)
	if strings.Contains(strings.ToLower(r.Title), t) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), t) {
			return true
		}
	}
	return false
}

// applyFilterLocked rebuilds the filtered view from the full collection and
// the active search term. Callers must hold s.mu.
func (s *Slice) applyFilterLocked() {
	filtered := make([]models.Recipe, 0, len(s.state.Recipes))
	for i := range s.state.Recipes {
		if Matches(&s.state.Recipes[i], s.state.SearchTerm) {
			filtered = append(filtered, s.state.Recipes[i])
		}
	}
	s.state.Filtered = filtered
}

// beginLocked marks a fetch as pending.
func (s *Slice) beginLocked() {
	s.state.Loading = true
	s.state.Err = ""
}

// FetchRecipes loads the full snapshot from the store. On success both the
// collection and the filtered view are replaced with the snapshot.
func (s *Slice) FetchRecipes(ctx context.Context) error {
	s.mu.Lock()
	s.beginLocked()
	s.mu.Unlock()

	snapshot, err := s.api.GetRecipes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = err.Error()
		s.logger.Error(ctx, "fetching recipes failed", "error", err)
		return err
	}
	s.state.Recipes = snapshot
	s.state.Filtered = models.CloneRecipes(snapshot)
	return nil
}

// FetchRecipeByID loads a single recipe into the currently-viewed slot.
// The collection and filtered view are not touched.
func (s *Slice) FetchRecipeByID(ctx context.Context, id string) error {
	s.mu.Lock()
	s.beginLocked()
	s.mu.Unlock()

	recipe, err := s.api.GetRecipeByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = err.Error()
		s.logger.Error(ctx, "fetching recipe failed", "id", id, "error", err)
		return err
	}
	s.state.Current = recipe
	return nil
}

// CreateRecipe submits a new recipe. On success it is appended to the
// collection and the filtered view is rebuilt with the active search term.
func (s *Slice) CreateRecipe(ctx context.Context, data models.Recipe) (*models.Recipe, error) {
	created, err := s.api.CreateRecipe(ctx, data)
	if err != nil {
		s.logger.Error(ctx, "creating recipe failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Recipes = append(s.state.Recipes, *created.Clone())
	s.applyFilterLocked()
	return created, nil
}

// UpdateRecipe submits a full replacement. On success the stored entry is
// replaced in place, the filtered view rebuilt, and the currently viewed
// recipe refreshed when it is the one that changed.
func (s *Slice) UpdateRecipe(ctx context.Context, data models.Recipe) (*models.Recipe, error) {
	updated, err := s.api.UpdateRecipe(ctx, data)
	if err != nil {
		s.logger.Error(ctx, "updating recipe failed", "id", data.ID, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Recipes {
		if s.state.Recipes[i].ID == updated.ID {
			s.state.Recipes[i] = *updated.Clone()
			s.applyFilterLocked()
			break
		}
	}
	if s.state.Current != nil && s.state.Current.ID == updated.ID {
		s.state.Current = updated.Clone()
	}
	return updated, nil
}

// DeleteRecipe removes a recipe. On success the ID is dropped from both the
// collection and the filtered view, and the currently viewed slot is
// cleared when it was showing that recipe.
func (s *Slice) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.api.DeleteRecipe(ctx, id); err != nil {
		s.logger.Error(ctx, "deleting recipe failed", "id", id, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Recipes = dropByID(s.state.Recipes, id)
	s.state.Filtered = dropByID(s.state.Filtered, id)
	if s.state.Current != nil && s.state.Current.ID == id {
		s.state.Current = nil
	}
	return nil
}

// SetSearchTerm stores the term and synchronously recomputes the filtered
// view. The underlying collection is never mutated.
func (s *Slice) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchTerm = term
	s.applyFilterLocked()
}

// ClearCurrentRecipe resets the currently viewed slot.
func (s *Slice) ClearCurrentRecipe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Current = nil
}

func dropByID(rs []models.Recipe, id string) []models.Recipe {
	out := make([]models.Recipe, 0, len(rs))
	for i := range rs {
		if rs[i].ID != id {
			out = append(out, rs[i])
		}
	}
	return out
}
