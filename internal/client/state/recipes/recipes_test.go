package recipes

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/models"
	"github.com/dmitrijs2005/recipebox/internal/store"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestSlice(t *testing.T) *Slice {
	t.Helper()
	return New(store.New(store.WithLatency(0, 0)), discardLogger())
}

// failingAPI rejects every operation.
type failingAPI struct {
	err error
}

func (f *failingAPI) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	return nil, f.err
}
func (f *failingAPI) GetRecipeByID(ctx context.Context, id string) (*models.Recipe, error) {
	return nil, f.err
}
func (f *failingAPI) CreateRecipe(ctx context.Context, data models.Recipe) (*models.Recipe, error) {
	return nil, f.err
}
func (f *failingAPI) UpdateRecipe(ctx context.Context, data models.Recipe) (*models.Recipe, error) {
	return nil, f.err
}
func (f *failingAPI) DeleteRecipe(ctx context.Context, id string) error {
	return f.err
}

func TestFetchRecipes_ReplacesCollectionAndFilteredView(t *testing.T) {
	s := newTestSlice(t)

	require.NoError(t, s.FetchRecipes(context.Background()))

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
	assert.Len(t, st.Recipes, 3)
	assert.Len(t, st.Filtered, 3)
}

func TestFetchRecipes_Rejected_RecordsError(t *testing.T) {
	s := New(&failingAPI{err: errors.New("boom")}, discardLogger())

	err := s.FetchRecipes(context.Background())
	require.Error(t, err)

	st := s.Snapshot()
	assert.False(t, st.Loading)
	assert.Equal(t, "boom", st.Err)
	assert.Empty(t, st.Recipes)
}

func TestFetchRecipeByID_SetsCurrentOnly(t *testing.T) {
	s := newTestSlice(t)
	ctx := context.Background()

	require.NoError(t, s.FetchRecipeByID(ctx, "2"))

	st := s.Snapshot()
	require.NotNil(t, st.Current)
	assert.Equal(t, "Avocado Toast", st.Current.Title)
	// The collection is untouched by a by-ID fetch.
	assert.Empty(t, st.Recipes)
}

func TestSetSearchTerm_EmptyTermMatchesEverything(t *testing.T) {
	s := newTestSlice(t)
	ctx := context.Background()

	require.NoError(t, s.FetchRecipes(ctx))
	s.SetSearchTerm("carbonara")
	s.SetSearchTerm("")

	st := s.Snapshot()
	require.Len(t, st.Filtered, len(st.Recipes))
	for i := range st.Recipes {
		assert.Equal(t, st.Recipes[i].ID, st.Filtered[i].ID)
	}
}

func TestSetSearchTerm_MatchesTitleCaseInsensitively(t *testing.T) {
	s := newTestSlice(t)

	require.NoError(t, s.FetchRecipes(context.Background()))
	s.SetSearchTerm("AVOCADO")

	st := s.Snapshot()
	require.Len(t, st.Filtered, 1)
	assert.Equal(t, "Avocado Toast", st.Filtered[0].Title)
}

func TestSetSearchTerm_MatchesIngredients(t *testing.T) {
	s := newTestSlice(t)

	require.NoError(t, s.FetchRecipes(context.Background()))
	s.SetSearchTerm("pancetta") // only in Spaghetti Carbonara's ingredients

	st := s.Snapshot()
	require.Len(t, st.Filtered, 1)
	assert.Equal(t, "Spaghetti Carbonara", st.Filtered[0].Title)
}

func TestSetSearchTerm_NeverMutatesCollection(t *testing.T) {
	s := newTestSlice(t)

	require.NoError(t, s.FetchRecipes(context.Background()))
	s.SetSearchTerm("avocado")

	st := s.Snapshot()
	assert.Len(t, st.Recipes, 3)
	assert.Len(t, st.Filtered, 1)
}

func TestCreateRecipe_AppendsAndReappliesFilter(t *testing.T) {
	s := newTestSlice(t)
	ctx := context.Background()

	require.NoError(t, s.FetchRecipes(ctx))
	s.SetSearchTerm("avocado")

	_, err := s.CreateRecipe(ctx, models.Recipe{
		Title:       "Avocado Salad",
		Ingredients: []string{"1 avocado"},
		CreatedBy:   "1",
	})
	require.NoError(t, err)

	st := s.Snapshot()
	assert.Len(t, st.Recipes, 4)
	// Both avocado recipes pass the active filter.
	require.Len(t, st.Filtered, 2)
}

func TestUpdateRecipe_ReplacesInPlaceAndRefreshesCurrent(t *testing.T) {
	s := newTestSlice(t)
	ctx := context.Background()

	require.NoError(t, s.FetchRecipes(ctx))
	require.NoError(t, s.FetchRecipeByID(ctx, "1"))

	st := s.Snapshot()
	r := st.Recipes[0]
	require.Equal(t, "1", r.ID)
	r.Title = "Double Chocolate Cookies"

	_, err := s.UpdateRecipe(ctx, r)
	require.NoError(t, err)

	st = s.Snapshot()
	assert.Equal(t, "Double Chocolate Cookies", st.Recipes[0].Title)
	require.NotNil(t, st.Current)
	assert.Equal(t, "Double Chocolate Cookies", st.Current.Title)
}

func TestUpdateRecipe_OtherRecipe_LeavesCurrentAlone(t *testing.T) {
	s := newTestSlice(t)
	ctx := context.Background()

	require.NoError(t, s.FetchRecipes(ctx))
	require.NoError(t, s.FetchRecipeByID(ctx, "2"))

	st := s.Snapshot()
	r := st.Recipes[0] // recipe "1"
	r.Title = "Changed"
	_, err := s.UpdateRecipe(ctx, r)
	require.NoError(t, err)

	st = s.Snapshot()
	require.NotNil(t, st.Current)
	assert.Equal(t, "Avocado Toast", st.Current.Title)
}

func TestDeleteRecipe_RemovesFromBothViewsAndClearsCurrent(t *testing.T) {
	s := newTestSlice(t)
	ctx := context.Background()

	require.NoError(t, s.FetchRecipes(ctx))
	require.NoError(t, s.FetchRecipeByID(ctx, "3"))

	require.NoError(t, s.DeleteRecipe(ctx, "3"))

	st := s.Snapshot()
	assert.Len(t, st.Recipes, 2)
	assert.Len(t, st.Filtered, 2)
	for _, r := range st.Recipes {
		assert.NotEqual(t, "3", r.ID)
	}
	assert.Nil(t, st.Current)
}

func TestDeleteRecipe_Rejected_LeavesStateUntouched(t *testing.T) {
	s := newTestSlice(t)
	ctx := context.Background()

	require.NoError(t, s.FetchRecipes(ctx))
	before := s.Snapshot()

	err := s.DeleteRecipe(ctx, "999")
	require.Error(t, err)

	after := s.Snapshot()
	assert.Equal(t, len(before.Recipes), len(after.Recipes))
	assert.Empty(t, after.Err) // delete failures do not use the error slot
}

func TestClearCurrentRecipe(t *testing.T) {
	s := newTestSlice(t)

	require.NoError(t, s.FetchRecipeByID(context.Background(), "1"))
	s.ClearCurrentRecipe()

	assert.Nil(t, s.Snapshot().Current)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s := newTestSlice(t)

	require.NoError(t, s.FetchRecipes(context.Background()))

	st := s.Snapshot()
	st.Recipes[0].Title = "mutated"
	st.Recipes[0].Ingredients[0] = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "Chocolate Chip Cookies", again.Recipes[0].Title)
	assert.Equal(t, "200g all-purpose flour", again.Recipes[0].Ingredients[0])
}

func TestMatches_TitleOrIngredient(t *testing.T) {
	r := models.Recipe{
		Title:       "Avocado Toast",
		Ingredients: []string{"1 ripe avocado", "2 slices of bread"},
	}

	assert.True(t, Matches(&r, "avocado"))
	assert.True(t, Matches(&r, "BREAD"))
	assert.True(t, Matches(&r, ""))
	assert.False(t, Matches(&r, "pancetta"))
}
