package models

import "strings"

// Difficulty is the declared skill level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty maps user-typed input to its canonical constant,
// case-insensitively, so "easy" and "EASY" both yield DifficultyEasy.
// ok is false for anything unrecognized.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return "", false
}

// Recipe is a recipe record owned by the entity store.
//
// AuthorName is denormalized: it caches the creator's username and is
// recomputed by the store on every create and update, never trusted from
// the caller.
type Recipe struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`

	// CookingTime is in minutes.
	CookingTime int        `json:"cookingTime"`
	Servings    int        `json:"servings"`
	Difficulty  Difficulty `json:"difficulty"`
	ImageURL    string     `json:"imageUrl"`

	// CreatedBy references a User.ID.
	CreatedBy  string `json:"createdBy"`
	AuthorName string `json:"authorName"`

	// Rating is in the range 0.0–5.0.
	Rating      float64  `json:"rating"`
	DietaryInfo []string `json:"dietaryInfo"`

	// CreatedAt is an RFC 3339 timestamp assigned by the store.
	CreatedAt string `json:"createdAt"`
}

// Clone returns a deep copy safe to hand out across the store boundary.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Instructions = append([]string(nil), r.Instructions...)
	c.DietaryInfo = append([]string(nil), r.DietaryInfo...)
	return &c
}

// CloneRecipes deep-copies a recipe slice.
func CloneRecipes(rs []Recipe) []Recipe {
	if rs == nil {
		return nil
	}
	out := make([]Recipe, len(rs))
	for i := range rs {
		out[i] = *rs[i].Clone()
	}
	return out
}
