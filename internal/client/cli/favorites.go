package cli

import (
	"context"
)

// Favorites refreshes and prints the logged-in user's favorite recipes.
func (a *App) Favorites(ctx context.Context) error {
	user := a.sessionUser()
	if user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	if err := a.favorites.Fetch(ctx, user.ID); err != nil {
		printlnFn("Error:", a.favorites.Snapshot().Err)
		return err
	}

	st := a.favorites.Snapshot()
	if len(st.Favorites) == 0 {
		printlnFn("No favorites yet.")
		return nil
	}
	for _, r := range st.Favorites {
		printlnFn(recipeSummary(&r))
	}
	return nil
}

// Favorite adds a recipe to the logged-in user's favorites.
func (a *App) Favorite(ctx context.Context, id string) error {
	user := a.sessionUser()
	if user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	if err := a.favorites.Add(ctx, user.ID, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Added to favorites.")
	return nil
}

// Unfavorite removes a recipe from the logged-in user's favorites.
func (a *App) Unfavorite(ctx context.Context, id string) error {
	user := a.sessionUser()
	if user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	if err := a.favorites.Remove(ctx, user.ID, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Removed from favorites.")
	return nil
}
