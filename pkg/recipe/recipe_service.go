package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/internal/utils"
	"github.com/rackiel/Foodify-sub001/pkg/dish"
	"github.com/rackiel/Foodify-sub001/pkg/ingredient"
	"github.com/rackiel/Foodify-sub001/pkg/preferences"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*domain.RecipeResponse, int64, error)
		GetRecipeByID(ctx context.Context, id string) (*domain.RecipeResponse, error)
		AddComment(ctx context.Context, req domain.AddCommentRequest, userID string) (*domain.CommentResponse, error)
		GetComments(ctx context.Context, recipeID string, page, limit int) ([]*domain.CommentResponse, int64, error)
		GetSuggestions(ctx context.Context, userID string) (*domain.RecipeSuggestionResponse, error)
	}

	progressUpdater interface {
		UpdateProgress(ctx context.Context, userID string, category string) error
	}

	recipeService struct {
		recipeRepository      RecipeRepository
		ingredientRepository  ingredient.IngredientRepository
		preferencesRepository preferences.PreferencesRepository
		progress              progressUpdater
		httpClient            *http.Client
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	preferencesRepository preferences.PreferencesRepository,
	progress progressUpdater,
) RecipeService {
	return &recipeService{
		recipeRepository:      recipeRepository,
		ingredientRepository:  ingredientRepository,
		preferencesRepository: preferencesRepository,
		progress:              progress,
		httpClient:            &http.Client{Timeout: 30 * time.Second},
	}
}

func toRecipeResponse(recipe *entities.Recipe) *domain.RecipeResponse {
	resp := &domain.RecipeResponse{
		ID:              recipe.ID.String(),
		UserID:          recipe.UserID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		Servings:        recipe.Servings,
		Ingredients:     recipe.Ingredients,
		Instructions:    recipe.Instructions,
		IsGenerated:     recipe.IsGenerated,
		CreatedAt:       recipe.CreatedAt,
	}
	if recipe.User != nil {
		resp.AuthorName = recipe.User.Name
	}
	return resp
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Title:           req.Title,
		Description:     req.Description,
		PrepTimeMinutes: req.PrepTimeMinutes,
		Servings:        req.Servings,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	if s.progress != nil {
		if err := s.progress.UpdateProgress(ctx, userID, domain.ChallengeCategoryRecipe); err != nil {
			log.Printf("challenge progress update failed for user %s: %v", userID, err)
		}
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) ([]*domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}

	return result, count, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (*domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) AddComment(ctx context.Context, req domain.AddCommentRequest, userID string) (*domain.CommentResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	comment := &entities.RecipeComment{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Content:  req.Content,
	}

	if err := s.recipeRepository.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	if s.progress != nil {
		if err := s.progress.UpdateProgress(ctx, userID, domain.ChallengeCategoryCommunity); err != nil {
			log.Printf("challenge progress update failed for user %s: %v", userID, err)
		}
	}

	return &domain.CommentResponse{
		ID:        comment.ID.String(),
		RecipeID:  comment.RecipeID.String(),
		UserID:    comment.UserID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *recipeService) GetComments(ctx context.Context, recipeID string, page, limit int) ([]*domain.CommentResponse, int64, error) {
	comments, count, err := s.recipeRepository.GetComments(ctx, recipeID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp := &domain.CommentResponse{
			ID:        comment.ID.String(),
			RecipeID:  comment.RecipeID.String(),
			UserID:    comment.UserID.String(),
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if comment.User != nil {
			resp.AuthorName = comment.User.Name
		}
		result = append(result, resp)
	}

	return result, count, nil
}

// GetSuggestions builds recipe ideas around the user's soonest-expiring
// ingredients. With an API key configured it asks an OpenAI-compatible chat
// completions endpoint; otherwise it falls back to the local dish rules.
func (s *recipeService) GetSuggestions(ctx context.Context, userID string) (*domain.RecipeSuggestionResponse, error) {
	now := time.Now()
	soon := now.AddDate(0, 0, 7)

	items, err := s.ingredientRepository.GetExpiringSoon(ctx, userID, soon)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		items, _, err = s.ingredientRepository.GetIngredients(ctx, userID, domain.IngredientStatusActive, 1, 100)
		if err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, domain.ErrNoIngredients
	}

	expiringItems := 0
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
		if item.ExpirationDate != nil && item.ExpirationDate.Before(soon) {
			expiringItems++
		}
	}

	servings := dish.DefaultServings
	dietType := ""
	allergies := ""
	if prefs, err := s.preferencesRepository.GetByUserID(ctx, userID); err == nil {
		dietType = prefs.DietType
		allergies = prefs.Allergies
		if prefs.HouseholdSize > 0 {
			servings = prefs.HouseholdSize
		}
	}

	if utils.GetConfig("LLM_API_KEY") != "" && utils.GetConfig("LLM_API_URL") != "" {
		suggestions, err := s.fetchSuggestions(ctx, names, dietType, allergies, servings)
		if err == nil && len(suggestions) > 0 {
			return &domain.RecipeSuggestionResponse{
				Suggestions:   suggestions,
				ExpiringItems: expiringItems,
				Generated:     true,
			}, nil
		}
		log.Printf("recipe suggestion API failed, using local rules: %v", err)
	}

	return &domain.RecipeSuggestionResponse{
		Suggestions:   fallbackSuggestions(names, servings),
		ExpiringItems: expiringItems,
		Generated:     false,
	}, nil
}

type (
	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatRequest struct {
		Model       string        `json:"model"`
		Messages    []chatMessage `json:"messages"`
		Temperature float64       `json:"temperature"`
	}

	chatResponse struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
)

func (s *recipeService) fetchSuggestions(ctx context.Context, names []string, dietType, allergies string, servings int) ([]domain.RecipeSuggestion, error) {
	prompt := fmt.Sprintf(
		"Suggest up to 3 simple Filipino home recipes using these ingredients: %s. Servings: %d.",
		strings.Join(names, ", "), servings)
	if dietType != "" && dietType != "none" {
		prompt += fmt.Sprintf(" Diet: %s.", dietType)
	}
	if allergies != "" {
		prompt += fmt.Sprintf(" Avoid: %s.", allergies)
	}
	prompt += ` Respond with only a JSON array, each element: {"title","description","ingredients":[],"instructions":[],"prep_time_minutes","servings"}.`

	body, err := json.Marshal(chatRequest{
		Model: utils.GetConfig("LLM_MODEL"),
		Messages: []chatMessage{
			{Role: "system", Content: "You are a recipe assistant for a food waste reduction app."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, utils.GetConfig("LLM_API_URL"), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+utils.GetConfig("LLM_API_KEY"))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrSuggestionsDown
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, domain.ErrSuggestionsDown
	}

	content := parsed.Choices[0].Message.Content
	// Models sometimes wrap the JSON in a code fence.
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var suggestions []domain.RecipeSuggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &suggestions); err != nil {
		return nil, err
	}

	return suggestions, nil
}

func fallbackSuggestions(names []string, servings int) []domain.RecipeSuggestion {
	featured := names
	if len(featured) > 3 {
		featured = featured[:3]
	}

	main := featured[0]
	inferred := dish.InferIngredients(strings.Join(featured, " "), "")

	suggestions := []domain.RecipeSuggestion{
		{
			Title:       fmt.Sprintf("Garlic %s sauté", strings.ToLower(main)),
			Description: fmt.Sprintf("A quick sauté to use up your %s before it expires.", strings.ToLower(main)),
			Ingredients: append([]string{main, "Garlic", "Onion", "Cooking Oil"}, inferred...),
			Instructions: []string{
				"Sauté garlic and onion until fragrant.",
				fmt.Sprintf("Add the %s and cook through.", strings.ToLower(main)),
				"Season to taste and serve with rice.",
			},
			PrepTimeMinutes: 20,
			Servings:        servings,
		},
	}

	if len(featured) > 1 {
		suggestions = append(suggestions, domain.RecipeSuggestion{
			Title:       fmt.Sprintf("%s fried rice", main),
			Description: "Day-old rice plus whatever is about to expire.",
			Ingredients: append([]string{"Rice", "Garlic", "Egg"}, featured...),
			Instructions: []string{
				"Fry garlic in oil, add rice and toss.",
				"Stir in the chopped ingredients and scramble in an egg.",
				"Season with soy sauce.",
			},
			PrepTimeMinutes: 15,
			Servings:        servings,
		})
	}

	return suggestions
}
