package ingredient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (IngredientService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Ingredient{}))

	repo := NewIngredientRepository(db)
	return NewIngredientService(repo, nil, nil, nil), db
}

func seedIngredient(t *testing.T, db *gorm.DB, userID uuid.UUID, status string, expiration *time.Time) *entities.Ingredient {
	t.Helper()

	row := &entities.Ingredient{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "Kangkong",
		Category:       "vegetable",
		Unit:           "bundle",
		Quantity:       1,
		ExpirationDate: expiration,
		Status:         status,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func daysFromNow(days int) *time.Time {
	d := time.Now().AddDate(0, 0, days)
	return &d
}

func TestAddIngredient(t *testing.T) {
	svc, _ := setupTestService(t)
	userID := uuid.New()

	res, err := svc.AddIngredient(context.Background(), domain.AddIngredientRequest{
		Name:           "Tilapia",
		Category:       "seafood",
		Unit:           "kg",
		Quantity:       0.5,
		ExpirationDate: "2030-06-15",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.IngredientStatusActive, res.Status)
	require.NotNil(t, res.ExpirationDate)
	assert.Equal(t, "2030-06-15", res.ExpirationDate.Format("2006-01-02"))

	_, err = svc.AddIngredient(context.Background(), domain.AddIngredientRequest{
		Name:           "Tilapia",
		Category:       "seafood",
		Unit:           "kg",
		Quantity:       0.5,
		ExpirationDate: "15/06/2030",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
}

func TestSweepMarksStaleRowsExpired(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	stale := seedIngredient(t, db, userID, domain.IngredientStatusActive, daysFromNow(-2))
	fresh := seedIngredient(t, db, userID, domain.IngredientStatusActive, daysFromNow(5))
	noDate := seedIngredient(t, db, userID, domain.IngredientStatusActive, nil)

	stats, err := svc.GetKitchenStats(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.SweptExpired)
	assert.Equal(t, int64(2), stats.ActiveItems)
	assert.Equal(t, int64(1), stats.ExpiredItems)

	got, err := svc.GetIngredientByID(context.Background(), stale.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientStatusExpired, got.Status)

	for _, id := range []uuid.UUID{fresh.ID, noDate.ID} {
		got, err := svc.GetIngredientByID(context.Background(), id.String(), userID.String())
		require.NoError(t, err)
		assert.Equal(t, domain.IngredientStatusActive, got.Status)
	}

	// re-running sweeps nothing new
	stats, err = svc.GetKitchenStats(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.SweptExpired)
}

func TestSweepScopedToOwner(t *testing.T) {
	svc, db := setupTestService(t)
	owner := uuid.New()
	other := uuid.New()

	seedIngredient(t, db, owner, domain.IngredientStatusActive, daysFromNow(-1))
	foreign := seedIngredient(t, db, other, domain.IngredientStatusActive, daysFromNow(-1))

	_, err := svc.GetKitchenStats(context.Background(), owner.String())
	require.NoError(t, err)

	got, err := svc.GetIngredientByID(context.Background(), foreign.ID.String(), other.String())
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientStatusActive, got.Status)
}

func TestMarkUsedAndRestoreKeepsExpiration(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	row := seedIngredient(t, db, userID, domain.IngredientStatusActive, daysFromNow(10))

	require.NoError(t, svc.MarkUsed(context.Background(), row.ID.String(), userID.String()))

	got, err := svc.GetIngredientByID(context.Background(), row.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientStatusUsed, got.Status)
	assert.NotNil(t, got.UsedAt)

	// marking used twice is rejected
	err = svc.MarkUsed(context.Background(), row.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidIngredientState)

	require.NoError(t, svc.Restore(context.Background(), row.ID.String(), userID.String()))

	got, err = svc.GetIngredientByID(context.Background(), row.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientStatusActive, got.Status)
	assert.Nil(t, got.UsedAt)
	assert.NotNil(t, got.ExpirationDate, "restore from used keeps the expiration date")
}

func TestRestoreFromExpiredClearsExpiration(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	row := seedIngredient(t, db, userID, domain.IngredientStatusExpired, daysFromNow(-3))

	require.NoError(t, svc.Restore(context.Background(), row.ID.String(), userID.String()))

	got, err := svc.GetIngredientByID(context.Background(), row.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientStatusActive, got.Status)
	assert.Nil(t, got.ExpirationDate, "restore from expired clears the expiration date")
}

func TestRestoreActiveRejected(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	row := seedIngredient(t, db, userID, domain.IngredientStatusActive, nil)

	err := svc.Restore(context.Background(), row.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidIngredientState)
}

func TestMutationsOwnerScoped(t *testing.T) {
	svc, db := setupTestService(t)
	owner := uuid.New()
	stranger := uuid.New()

	row := seedIngredient(t, db, owner, domain.IngredientStatusActive, nil)

	err := svc.UpdateIngredient(context.Background(), row.ID.String(), domain.UpdateIngredientRequest{Name: "Hijacked"}, stranger.String())
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	err = svc.MarkUsed(context.Background(), row.ID.String(), stranger.String())
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	err = svc.DeleteIngredient(context.Background(), row.ID.String(), stranger.String())
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	got, err := svc.GetIngredientByID(context.Background(), row.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, "Kangkong", got.Name)
}

func TestGetIngredientsStatusFilter(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	seedIngredient(t, db, userID, domain.IngredientStatusActive, nil)
	seedIngredient(t, db, userID, domain.IngredientStatusUsed, nil)

	items, count, err := svc.GetIngredients(context.Background(), userID.String(), domain.IngredientStatusUsed, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, items, 1)
	assert.Equal(t, domain.IngredientStatusUsed, items[0].Status)

	_, _, err = svc.GetIngredients(context.Background(), userID.String(), "rotten", 1, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusFilter)
}
