package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/models"
)

// recipeSummary renders a one-line view used by list and search output.
func recipeSummary(r *models.Recipe) string {
	return fmt.Sprintf("%s  %-30s  by %-14s  %3d min  %-6s  %.1f★",
		r.ID, r.Title, r.AuthorName, r.CookingTime, r.Difficulty, r.Rating)
}

// recipeDetails renders the full multi-line view used by show.
func recipeDetails(r *models.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.Title)
	fmt.Fprintf(&b, "%s\n\n", r.Description)
	fmt.Fprintf(&b, "Author:      %s\n", r.AuthorName)
	fmt.Fprintf(&b, "Cooking:     %d min, serves %d\n", r.CookingTime, r.Servings)
	fmt.Fprintf(&b, "Difficulty:  %s\n", r.Difficulty)
	fmt.Fprintf(&b, "Rating:      %.1f\n", r.Rating)
	if len(r.DietaryInfo) > 0 {
		fmt.Fprintf(&b, "Dietary:     %s\n", strings.Join(r.DietaryInfo, ", "))
	}
	if r.ImageURL != "" {
		fmt.Fprintf(&b, "Image:       %s\n", r.ImageURL)
	}

	b.WriteString("\nIngredients:\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "  - %s\n", ing)
	}

	b.WriteString("\nInstructions:\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	return strings.TrimRight(b.String(), "\n")
}
