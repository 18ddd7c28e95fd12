package preferences

import (
	"context"

	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	PreferencesRepository interface {
		GetByUserID(ctx context.Context, userID string) (*entities.UserPreferences, error)
		Create(ctx context.Context, prefs *entities.UserPreferences) error
		Update(ctx context.Context, userID string, fields map[string]interface{}) error
	}

	preferencesRepository struct {
		db *gorm.DB
	}
)

func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) GetByUserID(ctx context.Context, userID string) (*entities.UserPreferences, error) {
	var prefs entities.UserPreferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *preferencesRepository) Create(ctx context.Context, prefs *entities.UserPreferences) error {
	return r.db.WithContext(ctx).Create(prefs).Error
}

func (r *preferencesRepository) Update(ctx context.Context, userID string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entities.UserPreferences{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}
