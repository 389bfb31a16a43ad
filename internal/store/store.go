package store

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/models"
	"github.com/google/uuid"
)

// Default artificial latency bounds, matching the variance of a typical
// residential round-trip.
const (
	DefaultLatencyMin = 200 * time.Millisecond
	DefaultLatencyMax = 1000 * time.Millisecond
)

// unknownAuthor is cached into Recipe.AuthorName when the creator cannot
// be resolved.
const unknownAuthor = "Unknown User"

// nowFn is a test seam for timestamp assignment.
var nowFn = time.Now

// Store owns the user and recipe collections.
type Store struct {
	mu      sync.Mutex
	users   []models.User
	recipes []models.Recipe

	latencyMin time.Duration
	latencyMax time.Duration
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLatency sets the artificial delay bounds. Pass (0, 0) to disable the
// delay entirely (the usual choice in tests).
func WithLatency(min, max time.Duration) Option {
	return func(s *Store) {
		s.latencyMin = min
		s.latencyMax = max
	}
}

// WithSeed replaces the default seed data with the given collections.
func WithSeed(users []models.User, recipes []models.Recipe) Option {
	return func(s *Store) {
		s.users = users
		s.recipes = recipes
	}
}

// New constructs a Store seeded with the default demo collections and the
// default latency bounds, then applies the given options.
func New(opts ...Option) *Store {
	s := &Store{
		users:      SeedUsers(),
		recipes:    SeedRecipes(),
		latencyMin: DefaultLatencyMin,
		latencyMax: DefaultLatencyMax,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// wait blocks for a random duration within the configured latency bounds.
// It returns early with ctx.Err() if the context is cancelled first.
func (s *Store) wait(ctx context.Context) error {
	if s.latencyMax <= 0 {
		return ctx.Err()
	}
	d := s.latencyMin
	if jitter := s.latencyMax - s.latencyMin; jitter > 0 {
		d += time.Duration(rand.Int63n(int64(jitter)))
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// usernameByIDLocked resolves a user ID to a username, falling back to
// unknownAuthor. Callers must hold s.mu.
func (s *Store) usernameByIDLocked(userID string) string {
	for i := range s.users {
		if s.users[i].ID == userID {
			return s.users[i].Username
		}
	}
	return unknownAuthor
}

// Login returns the user record matching username.
//
// The password is accepted but deliberately not verified: the store has no
// credential storage at all, which mirrors the service it simulates. Any
// password logs in an existing username; a missing username fails with
// common.ErrorNotFound regardless of password.
func (s *Store) Login(ctx context.Context, username, password string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			return s.users[i].Clone(), nil
		}
	}
	return nil, fmt.Errorf("invalid username or password: %w", common.ErrorNotFound)
}

// Signup creates a new user with an empty favorites list. Username is
// checked before email; either duplicate fails with common.ErrorConflict.
func (s *Store) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			return nil, fmt.Errorf("username already exists: %w", common.ErrorConflict)
		}
	}
	for i := range s.users {
		if s.users[i].Email == email {
			return nil, fmt.Errorf("email already in use: %w", common.ErrorConflict)
		}
	}

	user := models.User{
		ID:              uuid.NewString(),
		Username:        username,
		Email:           email,
		FavoriteRecipes: []string{},
	}
	s.users = append(append([]models.User(nil), s.users...), user)
	return user.Clone(), nil
}

// GetRecipes returns a snapshot of the full recipe collection in insertion
// order.
func (s *Store) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneRecipes(s.recipes), nil
}

// GetRecipeByID returns a single recipe or common.ErrorNotFound.
func (s *Store) GetRecipeByID(ctx context.Context, id string) (*models.Recipe, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return s.recipes[i].Clone(), nil
		}
	}
	return nil, fmt.Errorf("recipe not found: %w", common.ErrorNotFound)
}

// CreateRecipe stores a new recipe. The store assigns the identifier and
// creation timestamp and recomputes AuthorName from the current creator;
// any caller-supplied values for those fields are ignored.
func (s *Store) CreateRecipe(ctx context.Context, data models.Recipe) (*models.Recipe, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := *data.Clone()
	r.ID = uuid.NewString()
	r.CreatedAt = nowFn().UTC().Format(time.RFC3339)
	r.AuthorName = s.usernameByIDLocked(r.CreatedBy)

	s.recipes = append(append([]models.Recipe(nil), s.recipes...), r)
	return r.Clone(), nil
}

// UpdateRecipe fully replaces the stored record with data, preserving the
// identifier and original creation timestamp. AuthorName is recomputed from
// the (possibly changed) CreatedBy, so it can never go stale.
func (s *Store) UpdateRecipe(ctx context.Context, data models.Recipe) (*models.Recipe, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recipes {
		if s.recipes[i].ID == data.ID {
			r := *data.Clone()
			r.CreatedAt = s.recipes[i].CreatedAt
			r.AuthorName = s.usernameByIDLocked(r.CreatedBy)
			s.recipes[i] = r
			return r.Clone(), nil
		}
	}
	return nil, fmt.Errorf("recipe not found: %w", common.ErrorNotFound)
}

// DeleteRecipe removes a recipe. It does not cascade into any user's
// favorites list; stale favorite IDs are filtered out on read instead.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := make([]models.Recipe, 0, len(s.recipes))
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			found = true
			continue
		}
		next = append(next, s.recipes[i])
	}
	if !found {
		return fmt.Errorf("recipe not found: %w", common.ErrorNotFound)
	}
	s.recipes = next
	return nil
}

// GetFavorites returns the recipes currently referenced by the user's
// favorites list. Favorite IDs of deleted recipes are silently skipped.
func (s *Store) GetFavorites(ctx context.Context, userID string) ([]models.Recipe, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(userID)
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", common.ErrorNotFound)
	}

	result := make([]models.Recipe, 0, len(user.FavoriteRecipes))
	for i := range s.recipes {
		if user.HasFavorite(s.recipes[i].ID) {
			result = append(result, *s.recipes[i].Clone())
		}
	}
	return result, nil
}

// AddToFavorites records recipeID in the user's favorites and returns the
// recipe. Adding an already-favorited recipe is a no-op, not an error.
// Fails with common.ErrorNotFound if either the user or the recipe is
// absent (user checked first).
func (s *Store) AddToFavorites(ctx context.Context, userID, recipeID string) (*models.Recipe, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(userID)
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", common.ErrorNotFound)
	}

	var recipe *models.Recipe
	for i := range s.recipes {
		if s.recipes[i].ID == recipeID {
			recipe = &s.recipes[i]
			break
		}
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe not found: %w", common.ErrorNotFound)
	}

	if !user.HasFavorite(recipeID) {
		user.FavoriteRecipes = append(user.FavoriteRecipes, recipeID)
	}
	return recipe.Clone(), nil
}

// RemoveFromFavorites drops recipeID from the user's favorites. A recipe ID
// that is not in the list (or no longer exists at all) is tolerated; only a
// missing user is an error.
func (s *Store) RemoveFromFavorites(ctx context.Context, userID, recipeID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserLocked(userID)
	if user == nil {
		return fmt.Errorf("user not found: %w", common.ErrorNotFound)
	}

	next := make([]string, 0, len(user.FavoriteRecipes))
	for _, id := range user.FavoriteRecipes {
		if id != recipeID {
			next = append(next, id)
		}
	}
	user.FavoriteRecipes = next
	return nil
}

// GetUsers returns a snapshot of the full user collection. Callers use it
// to resolve display names.
func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.User, len(s.users))
	for i := range s.users {
		result[i] = *s.users[i].Clone()
	}
	return result, nil
}

// findUserLocked returns a pointer into the live users slice, or nil.
// Callers must hold s.mu and must not retain the pointer past the unlock.
func (s *Store) findUserLocked(userID string) *models.User {
	for i := range s.users {
		if s.users[i].ID == userID {
			return &s.users[i]
		}
	}
	return nil
}
