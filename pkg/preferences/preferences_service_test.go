package preferences

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (PreferencesService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.UserPreferences{}))

	return NewPreferencesService(NewPreferencesRepository(db)), db
}

func TestGetPreferencesSeedsDefaults(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	res, err := svc.GetPreferences(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, defaultDietType, res.DietType)
	assert.Equal(t, defaultDailyCalories, res.DailyCalories)
	assert.Equal(t, defaultDailyProtein, res.DailyProtein)
	assert.Equal(t, defaultHouseholdSize, res.HouseholdSize)

	// a second read reuses the seeded row
	_, err = svc.GetPreferences(context.Background(), userID.String())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.UserPreferences{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdatePreferencesPartial(t *testing.T) {
	svc, _ := setupTestService(t)
	userID := uuid.New()

	res, err := svc.UpdatePreferences(context.Background(), domain.UpdatePreferencesRequest{
		DietType:      "vegetarian",
		HouseholdSize: 4,
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "vegetarian", res.DietType)
	assert.Equal(t, 4, res.HouseholdSize)
	// untouched fields keep their defaults
	assert.Equal(t, defaultDailyCalories, res.DailyCalories)

	res, err = svc.UpdatePreferences(context.Background(), domain.UpdatePreferencesRequest{
		Allergies: "peanuts, shellfish",
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, "peanuts, shellfish", res.Allergies)
	assert.Equal(t, "vegetarian", res.DietType)
}
