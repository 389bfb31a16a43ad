package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/models"
)

// List fetches all recipes and prints the currently filtered view.
func (a *App) List(ctx context.Context) error {
	if err := a.recipes.FetchRecipes(ctx); err != nil {
		printlnFn("Error:", a.recipes.Snapshot().Err)
		return err
	}

	st := a.recipes.Snapshot()
	if len(st.Filtered) == 0 {
		printlnFn("No recipes found.")
		return nil
	}
	for _, r := range st.Filtered {
		printlnFn(recipeSummary(&r))
	}
	return nil
}

// Search sets the search term and prints the recipes matching it. An empty
// term clears the filter.
func (a *App) Search(ctx context.Context, term string) error {
	a.recipes.SetSearchTerm(term)

	st := a.recipes.Snapshot()
	if len(st.Recipes) == 0 {
		// nothing fetched yet, load first so the filter has data to work on
		if err := a.recipes.FetchRecipes(ctx); err != nil {
			printlnFn("Error:", a.recipes.Snapshot().Err)
			return err
		}
		a.recipes.SetSearchTerm(term)
		st = a.recipes.Snapshot()
	}

	if len(st.Filtered) == 0 {
		printlnFn(fmt.Sprintf("No recipes match %q.", term))
		return nil
	}
	for _, r := range st.Filtered {
		printlnFn(recipeSummary(&r))
	}
	return nil
}

// Show fetches a single recipe and prints its full details.
func (a *App) Show(ctx context.Context, id string) error {
	if err := a.recipes.FetchRecipeByID(ctx, id); err != nil {
		printlnFn("Error:", a.recipes.Snapshot().Err)
		return err
	}

	st := a.recipes.Snapshot()
	if st.Current == nil {
		printlnFn("Recipe not found.")
		return nil
	}
	printlnFn(recipeDetails(st.Current))
	return nil
}

// Add interactively collects a new recipe and creates it in the store. The
// author is the logged-in user.
func (a *App) Add(ctx context.Context) error {
	user := a.sessionUser()
	if user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	data, err := a.promptRecipe(models.Recipe{})
	if err != nil {
		return err
	}
	data.CreatedBy = user.ID

	created, err := a.recipes.CreateRecipe(ctx, data)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Created recipe %s (%s).", created.Title, created.ID))
	return nil
}

// Edit interactively updates an existing recipe. Empty answers keep the
// current values.
func (a *App) Edit(ctx context.Context, id string) error {
	user := a.sessionUser()
	if user == nil {
		printlnFn("Please log in first.")
		return nil
	}

	if err := a.recipes.FetchRecipeByID(ctx, id); err != nil {
		printlnFn("Error:", a.recipes.Snapshot().Err)
		return err
	}
	current := a.recipes.Snapshot().Current
	if current == nil {
		printlnFn("Recipe not found.")
		return nil
	}

	data, err := a.promptRecipe(*current)
	if err != nil {
		return err
	}
	data.ID = id

	updated, err := a.recipes.UpdateRecipe(ctx, data)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Updated recipe %s.", updated.Title))
	return nil
}

// Delete removes a recipe from the store.
func (a *App) Delete(ctx context.Context, id string) error {
	if a.sessionUser() == nil {
		printlnFn("Please log in first.")
		return nil
	}

	if err := a.recipes.DeleteRecipe(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Recipe deleted.")
	return nil
}

// promptRecipe collects recipe fields interactively. When base is non-empty
// its values act as defaults: an empty answer keeps the current value.
func (a *App) promptRecipe(base models.Recipe) (models.Recipe, error) {
	r := base

	title, err := getSimpleText(a.reader, promptLabel("Title", base.Title), os.Stdout)
	if err != nil {
		return r, err
	}
	if title != "" {
		r.Title = title
	}

	descr, err := getSimpleText(a.reader, promptLabel("Description", base.Description), os.Stdout)
	if err != nil {
		return r, err
	}
	if descr != "" {
		r.Description = descr
	}

	ingredients, err := GetLines(a.reader, "Ingredients (one per line)", os.Stdout)
	if err != nil {
		return r, err
	}
	if len(ingredients) > 0 {
		r.Ingredients = ingredients
	}

	instructions, err := GetLines(a.reader, "Instructions (one step per line)", os.Stdout)
	if err != nil {
		return r, err
	}
	if len(instructions) > 0 {
		r.Instructions = instructions
	}

	r.CookingTime, err = GetIntDefault(a.reader, "Cooking time, minutes", base.CookingTime, os.Stdout)
	if err != nil {
		return r, err
	}
	r.Servings, err = GetIntDefault(a.reader, "Servings", base.Servings, os.Stdout)
	if err != nil {
		return r, err
	}

	for {
		text, err := getSimpleText(a.reader, promptLabel("Difficulty (easy/medium/hard)", string(base.Difficulty)), os.Stdout)
		if err != nil {
			return r, err
		}
		if text == "" && base.Difficulty != "" {
			break
		}
		if d, ok := models.ParseDifficulty(text); ok {
			r.Difficulty = d
			break
		}
		printlnFn("Please enter easy, medium or hard.")
	}

	imageURL, err := getSimpleText(a.reader, promptLabel("Image URL (optional)", base.ImageURL), os.Stdout)
	if err != nil {
		return r, err
	}
	if imageURL != "" {
		r.ImageURL = imageURL
	}

	dietary, err := getSimpleText(a.reader, "Dietary info, comma separated (optional)", os.Stdout)
	if err != nil {
		return r, err
	}
	if dietary != "" {
		var tags []string
		for _, tag := range strings.Split(dietary, ",") {
			if t := strings.TrimSpace(tag); t != "" {
				tags = append(tags, t)
			}
		}
		r.DietaryInfo = tags
	}

	return r, nil
}

func promptLabel(name, current string) string {
	if current == "" {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, current)
}
