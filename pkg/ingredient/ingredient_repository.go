package ingredient

import (
	"context"
	"time"

	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string, userID string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Ingredient, int64, error)
		UpdateIngredient(ctx context.Context, id string, userID string, fields map[string]interface{}) (int64, error)
		UpdateIngredientStatus(ctx context.Context, id string, userID string, fromStatus string, fields map[string]interface{}) (int64, error)
		DeleteIngredient(ctx context.Context, id string, userID string) (int64, error)
		SweepExpired(ctx context.Context, userID string, today time.Time) (int64, error)
		GetExpiringSoon(ctx context.Context, userID string, within time.Time) ([]*entities.Ingredient, error)
		CountByStatus(ctx context.Context, userID string, status string) (int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string, userID string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Ingredient, int64, error) {
	var ingredients []*entities.Ingredient
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.Ingredient{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiration_date asc").Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, count, nil
}

// UpdateIngredient applies fields in a single owner-scoped conditional update.
// The returned row count tells the caller whether the ingredient existed and
// belonged to the user, removing the check-then-act window.
func (r *ingredientRepository) UpdateIngredient(ctx context.Context, id string, userID string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *ingredientRepository) UpdateIngredientStatus(ctx context.Context, id string, userID string, fromStatus string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, fromStatus).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id string, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Ingredient{})
	return result.RowsAffected, result.Error
}

// SweepExpired lazily transitions the user's stale active rows to expired.
// Idempotent; scoped to one owner per call.
func (r *ingredientRepository) SweepExpired(ctx context.Context, userID string, today time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("user_id = ? AND status = ? AND expiration_date IS NOT NULL AND expiration_date < ?",
			userID, "active", today).
		Update("status", "expired")
	return result.RowsAffected, result.Error
}

func (r *ingredientRepository) GetExpiringSoon(ctx context.Context, userID string, within time.Time) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND expiration_date IS NOT NULL AND expiration_date <= ?",
			userID, "active", within).
		Order("expiration_date asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) CountByStatus(ctx context.Context, userID string, status string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Ingredient{}).Where("user_id = ?", userID)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
