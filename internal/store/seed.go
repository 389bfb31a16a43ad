package store

import "github.com/dmitrijs2005/recipebox/internal/models"

// SeedUsers returns the demo user collection the store starts with.
// Seed records keep short numeric IDs; anything created at runtime gets a
// UUID, so the two ranges can never collide.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:              "1",
			Username:        "Tharushi",
			Email:           "tharu@example.com",
			FavoriteRecipes: []string{"1", "3"},
		},
		{
			ID:              "2",
			Username:        "Kusal",
			Email:           "kusal@example.com",
			FavoriteRecipes: []string{"2"},
		},
		{
			ID:              "3",
			Username:        "Keminda",
			Email:           "keminda@example.com",
			FavoriteRecipes: []string{"3"},
		},
	}
}

// SeedRecipes returns the demo recipe collection the store starts with.
func SeedRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "1",
			Title:       "Chocolate Chip Cookies",
			Description: "Classic homemade cookies with melty chocolate chips and a soft center.",
			Ingredients: []string{
				"200g all-purpose flour",
				"120g unsalted butter",
				"100g brown sugar",
				"100g granulated sugar",
				"1 large egg",
				"1 tsp vanilla extract",
				"1/2 tsp baking soda",
				"1/2 tsp salt",
				"200g chocolate chips",
			},
			Instructions: []string{
				"Cream the butter with both sugars until light.",
				"Beat in the egg and vanilla.",
				"Fold in flour, baking soda and salt.",
				"Stir in the chocolate chips.",
				"Scoop onto a lined tray and bake at 180C for 10-12 minutes.",
			},
			CookingTime: 25,
			Servings:    12,
			Difficulty:  models.DifficultyEasy,
			ImageURL:    "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?auto=format&fit=crop&w=700&q=80",
			CreatedBy:   "2",
			AuthorName:  "Kusal",
			Rating:      4.9,
			DietaryInfo: []string{"contains dairy", "contains eggs", "contains gluten"},
			CreatedAt:   "2023-02-10T09:30:00Z",
		},
		{
			ID:          "2",
			Title:       "Avocado Toast",
			Description: "Simple and nutritious breakfast with mashed avocado on toasted bread.",
			Ingredients: []string{
				"2 slices of bread",
				"1 ripe avocado",
				"Salt and pepper to taste",
				"Red pepper flakes",
				"Extra virgin olive oil",
				"Optional: 2 eggs",
			},
			Instructions: []string{
				"Toast the bread until golden and firm.",
				"Remove the pit from the avocado and scoop the flesh into a bowl.",
				"Mash the avocado with a fork and season with salt, pepper, and red pepper flakes.",
				"Spread the mashed avocado on top of the toasted bread.",
				"Drizzle with olive oil and add additional toppings if desired.",
				"Optional: Top with a fried or poached egg.",
			},
			CookingTime: 10,
			Servings:    1,
			Difficulty:  models.DifficultyEasy,
			ImageURL:    "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?auto=format&fit=crop&w=1172&q=80",
			CreatedBy:   "3",
			AuthorName:  "Keminda",
			Rating:      4.5,
			DietaryInfo: []string{"vegetarian", "vegan optional"},
			CreatedAt:   "2023-02-20T09:30:00Z",
		},
		{
			ID:          "3",
			Title:       "Spaghetti Carbonara",
			Description: "Classic Italian pasta dish with eggs, cheese, pancetta, and pepper. Spicy and delicious!",
			Ingredients: []string{
				"200g spaghetti",
				"100g pancetta",
				"2 large eggs",
				"50g pecorino cheese",
				"50g parmesan",
				"Freshly ground black pepper",
				"1 clove of garlic",
			},
			Instructions: []string{
				"Cook spaghetti in a large pot of boiling salted water.",
				"In a pan, cook pancetta with garlic until crispy.",
				"Beat eggs and mix with grated cheeses.",
				"Drain pasta and add to the pan with pancetta.",
				"Remove from heat and quickly stir in egg mixture.",
				"Season with black pepper and serve immediately.",
			},
			CookingTime: 20,
			Servings:    2,
			Difficulty:  models.DifficultyMedium,
			ImageURL:    "https://images.unsplash.com/photo-1546549032-9571cd6b27df?auto=format&fit=crop&w=687&q=80",
			CreatedBy:   "1",
			AuthorName:  "Tharushi",
			Rating:      4.8,
			DietaryInfo: []string{"contains dairy", "contains eggs"},
			CreatedAt:   "2023-01-15T12:00:00Z",
		},
	}
}
