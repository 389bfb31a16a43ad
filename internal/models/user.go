// Package models defines the entity types shared by the RecipeBox store and
// the client state slices.
package models

// User is an account record owned by the entity store.
type User struct {
	// ID is a globally unique identifier for the user.
	ID string `json:"id"`

	// Username is unique within the store and doubles as the display name.
	Username string `json:"username"`

	// Email is unique within the store.
	Email string `json:"email"`

	// FavoriteRecipes holds recipe IDs with set semantics: an ID appears at
	// most once. IDs of deleted recipes may linger here; readers are expected
	// to intersect with the live recipe collection.
	FavoriteRecipes []string `json:"favoriteRecipes"`
}

// Clone returns a deep copy safe to hand out across the store boundary.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.FavoriteRecipes = append([]string(nil), u.FavoriteRecipes...)
	return &c
}

// HasFavorite reports whether recipeID is in the user's favorites.
func (u *User) HasFavorite(recipeID string) bool {
	for _, id := range u.FavoriteRecipes {
		if id == recipeID {
			return true
		}
	}
	return false
}
