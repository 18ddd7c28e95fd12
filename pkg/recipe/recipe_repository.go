package recipe

import (
	"context"

	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		AddComment(ctx context.Context, comment *entities.RecipeComment) error
		GetComments(ctx context.Context, recipeID string, page, limit int) ([]*entities.RecipeComment, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) AddComment(ctx context.Context, comment *entities.RecipeComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *recipeRepository) GetComments(ctx context.Context, recipeID string, page, limit int) ([]*entities.RecipeComment, int64, error) {
	var comments []*entities.RecipeComment
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID)

	if err := query.Model(&entities.RecipeComment{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("User").
		Offset(offset).Limit(limit).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, count, nil
}
