package recipe

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/pkg/ingredient"
	"github.com/rackiel/Foodify-sub001/pkg/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Ingredient{},
		&entities.UserPreferences{},
		&entities.Recipe{},
		&entities.RecipeComment{},
	))

	svc := NewRecipeService(
		NewRecipeRepository(db),
		ingredient.NewIngredientRepository(db),
		preferences.NewPreferencesRepository(db),
		nil,
	)
	return svc, db
}

func seedIngredient(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, expiresAt *time.Time) {
	t.Helper()

	require.NoError(t, db.Create(&entities.Ingredient{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Category:       "produce",
		Unit:           "pcs",
		Quantity:       1,
		ExpirationDate: expiresAt,
		Status:         domain.IngredientStatusActive,
	}).Error)
}

func TestCreateRecipeAndFetch(t *testing.T) {
	svc, _ := setupTestService(t)
	userID := uuid.New()

	created, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "Tortang Talong",
		Description:  "Grilled eggplant omelette",
		Servings:     4,
		Ingredients:  "Eggplant, Egg, Garlic",
		Instructions: "Grill, peel, flatten, dip in egg, fry.",
	}, userID.String())
	require.NoError(t, err)
	assert.False(t, created.IsGenerated)

	got, err := svc.GetRecipeByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tortang Talong", got.Title)

	_, err = svc.GetRecipeByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCommentsRequireExistingRecipe(t *testing.T) {
	svc, _ := setupTestService(t)
	userID := uuid.New()

	_, err := svc.AddComment(context.Background(), domain.AddCommentRequest{
		RecipeID: uuid.New().String(),
		Content:  "Looks great",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	recipe, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "Ginisang Monggo",
		Ingredients:  "Mung Beans, Garlic",
		Instructions: "Boil beans, sauté aromatics, combine.",
	}, userID.String())
	require.NoError(t, err)

	comment, err := svc.AddComment(context.Background(), domain.AddCommentRequest{
		RecipeID: recipe.ID,
		Content:  "Added malunggay leaves, turned out great.",
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, comment.RecipeID)

	comments, count, err := svc.GetComments(context.Background(), recipe.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}

func TestSuggestionsWithoutIngredients(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.GetSuggestions(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNoIngredients)
}

func TestSuggestionsFallbackUsesExpiringFirst(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	soon := time.Now().AddDate(0, 0, 2)
	later := time.Now().AddDate(0, 1, 0)
	seedIngredient(t, db, userID, "Chicken", &soon)
	seedIngredient(t, db, userID, "Cabbage", &soon)
	seedIngredient(t, db, userID, "Rice", &later)

	res, err := svc.GetSuggestions(context.Background(), userID.String())
	require.NoError(t, err)
	assert.False(t, res.Generated)
	assert.Equal(t, 2, res.ExpiringItems)
	require.NotEmpty(t, res.Suggestions)
	assert.Contains(t, res.Suggestions[0].Title, "chicken")
	assert.Equal(t, 4, res.Suggestions[0].Servings)
}

func TestSuggestionsUseHouseholdSize(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	soon := time.Now().AddDate(0, 0, 2)
	seedIngredient(t, db, userID, "Tilapia", &soon)

	require.NoError(t, db.Create(&entities.UserPreferences{
		ID:            uuid.New(),
		UserID:        userID,
		DietType:      "none",
		HouseholdSize: 7,
	}).Error)

	res, err := svc.GetSuggestions(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 7, res.Suggestions[0].Servings)
}

func TestSuggestionsFallBackToActiveWhenNothingExpires(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	seedIngredient(t, db, userID, "Canned Tuna", nil)

	res, err := svc.GetSuggestions(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExpiringItems)
	require.NotEmpty(t, res.Suggestions)
}
