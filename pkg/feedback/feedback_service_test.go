package feedback

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

func setupTestService(t *testing.T) (FeedbackService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.CommunityFeedback{}))

	return NewFeedbackService(NewFeedbackRepository(db)), db
}

func TestCreateFeedback(t *testing.T) {
	svc, _ := setupTestService(t)
	userID := uuid.New()

	res, err := svc.CreateFeedback(context.Background(), domain.CreateFeedbackRequest{
		Rating:  4,
		Subject: "Donation flow",
		Message: "Pickup scheduling would help a lot.",
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStatusNew, res.Status)

	_, err = svc.CreateFeedback(context.Background(), domain.CreateFeedbackRequest{
		Rating:  6,
		Subject: "x",
		Message: "rating out of range",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestUpdateFeedbackOnlyWhileNew(t *testing.T) {
	svc, db := setupTestService(t)
	userID := uuid.New()

	res, err := svc.CreateFeedback(context.Background(), domain.CreateFeedbackRequest{
		Rating:  3,
		Subject: "App speed",
		Message: "Feels slow on my phone.",
	}, userID.String())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateFeedback(context.Background(), res.ID, domain.UpdateFeedbackRequest{
		Rating: 2,
	}, userID.String()))

	// once reviewed, updates no longer touch the row
	require.NoError(t, db.Model(&entities.CommunityFeedback{}).
		Where("id = ?", res.ID).
		Update("status", domain.FeedbackStatusReviewed).Error)

	err = svc.UpdateFeedback(context.Background(), res.ID, domain.UpdateFeedbackRequest{
		Rating: 5,
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrFeedbackLocked)

	var row entities.CommunityFeedback
	require.NoError(t, db.First(&row, "id = ?", res.ID).Error)
	assert.Equal(t, 2, row.Rating)
}

func TestUpdateFeedbackUnknownRow(t *testing.T) {
	svc, _ := setupTestService(t)

	err := svc.UpdateFeedback(context.Background(), uuid.New().String(), domain.UpdateFeedbackRequest{
		Rating: 1,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrFeedbackNotFound)
}

func TestDeleteFeedbackOnlyWhileNewAndOwned(t *testing.T) {
	svc, db := setupTestService(t)
	owner := uuid.New()
	stranger := uuid.New()

	res, err := svc.CreateFeedback(context.Background(), domain.CreateFeedbackRequest{
		Rating:  5,
		Subject: "Thanks",
		Message: "Challenges keep my kids engaged.",
	}, owner.String())
	require.NoError(t, err)

	err = svc.DeleteFeedback(context.Background(), res.ID, stranger.String())
	assert.ErrorIs(t, err, domain.ErrFeedbackNotFound)

	require.NoError(t, db.Model(&entities.CommunityFeedback{}).
		Where("id = ?", res.ID).
		Update("status", domain.FeedbackStatusResolved).Error)

	err = svc.DeleteFeedback(context.Background(), res.ID, owner.String())
	assert.ErrorIs(t, err, domain.ErrFeedbackLocked)

	var count int64
	require.NoError(t, db.Model(&entities.CommunityFeedback{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
