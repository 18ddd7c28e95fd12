package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe   = "recipe created successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessGetRecipe      = "recipe retrieved successfully"
	MessageSuccessAddComment     = "comment added successfully"
	MessageSuccessGetComments    = "comments retrieved successfully"
	MessageSuccessGetSuggestions = "recipe suggestions retrieved successfully"

	MessageFailedCreateRecipe   = "failed to create recipe"
	MessageFailedGetRecipes     = "failed to retrieve recipes"
	MessageFailedGetRecipe      = "failed to retrieve recipe"
	MessageFailedAddComment     = "failed to add comment"
	MessageFailedGetComments    = "failed to retrieve comments"
	MessageFailedGetSuggestions = "failed to retrieve recipe suggestions"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrNoIngredients   = errors.New("no active ingredients to suggest recipes from")
	ErrSuggestionsDown = errors.New("recipe suggestion service unavailable")
)

type (
	CreateRecipeRequest struct {
		Title           string `json:"title" validate:"required,min=3"`
		Description     string `json:"description" validate:"omitempty"`
		PrepTimeMinutes int    `json:"prep_time_minutes" validate:"omitempty,min=0"`
		Servings        int    `json:"servings" validate:"omitempty,min=1"`
		Ingredients     string `json:"ingredients" validate:"required"`
		Instructions    string `json:"instructions" validate:"required"`
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		AuthorName      string    `json:"author_name,omitempty"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		Servings        int       `json:"servings"`
		Ingredients     string    `json:"ingredients"`
		Instructions    string    `json:"instructions"`
		IsGenerated     bool      `json:"is_generated"`
		CreatedAt       time.Time `json:"created_at"`
	}

	AddCommentRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Content  string `json:"content" validate:"required,min=1,max=1000"`
	}

	CommentResponse struct {
		ID         string    `json:"id"`
		RecipeID   string    `json:"recipe_id"`
		UserID     string    `json:"user_id"`
		AuthorName string    `json:"author_name,omitempty"`
		Content    string    `json:"content"`
		CreatedAt  time.Time `json:"created_at"`
	}

	RecipeSuggestion struct {
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		Ingredients     []string `json:"ingredients"`
		Instructions    []string `json:"instructions"`
		PrepTimeMinutes int      `json:"prep_time_minutes"`
		Servings        int      `json:"servings"`
	}

	RecipeSuggestionResponse struct {
		Suggestions   []RecipeSuggestion `json:"suggestions"`
		ExpiringItems int                `json:"expiring_items"`
		Generated     bool               `json:"generated"`
	}
)
