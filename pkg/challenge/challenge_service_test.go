package challenge

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/pkg/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (ChallengeService, points.PointsService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Challenge{},
		&entities.ChallengeParticipant{},
		&entities.PointsTransaction{},
		&entities.FoodDonation{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeComment{},
	))

	pointsService := points.NewPointsService(points.NewPointsRepository(db))
	svc := NewChallengeService(NewChallengeRepository(db), pointsService)
	return svc, pointsService, db
}

func seedChallenge(t *testing.T, db *gorm.DB, category string, target, reward int) *entities.Challenge {
	t.Helper()

	c := &entities.Challenge{
		ID:          uuid.New(),
		Title:       "Test challenge",
		Category:    category,
		TargetValue: target,
		Points:      reward,
		StartDate:   time.Now().Add(-24 * time.Hour),
		EndDate:     time.Now().Add(7 * 24 * time.Hour),
		IsActive:    true,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedDonationAt(t *testing.T, db *gorm.DB, userID uuid.UUID, createdAt time.Time) {
	t.Helper()

	d := &entities.FoodDonation{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          "Extra rice",
		ApprovalStatus: domain.DonationStatusPending,
	}
	d.CreatedAt = createdAt
	d.UpdatedAt = createdAt
	require.NoError(t, db.Create(d).Error)
}

func TestJoinChallenge(t *testing.T) {
	svc, _, db := setupTestService(t)
	userID := uuid.New()
	c := seedChallenge(t, db, domain.ChallengeCategoryDonation, 2, 50)

	res, err := svc.JoinChallenge(context.Background(), domain.JoinChallengeRequest{ChallengeID: c.ID.String()}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Progress)
	assert.False(t, res.Completed)

	_, err = svc.JoinChallenge(context.Background(), domain.JoinChallengeRequest{ChallengeID: c.ID.String()}, userID.String())
	assert.ErrorIs(t, err, domain.ErrAlreadyJoined)
}

func TestJoinChallengeRejectsInactiveAndEnded(t *testing.T) {
	svc, _, db := setupTestService(t)
	userID := uuid.New()

	inactive := seedChallenge(t, db, domain.ChallengeCategoryRecipe, 1, 10)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	_, err := svc.JoinChallenge(context.Background(), domain.JoinChallengeRequest{ChallengeID: inactive.ID.String()}, userID.String())
	assert.ErrorIs(t, err, domain.ErrChallengeNotActive)

	ended := seedChallenge(t, db, domain.ChallengeCategoryRecipe, 1, 10)
	require.NoError(t, db.Model(ended).Update("end_date", time.Now().Add(-time.Hour)).Error)

	_, err = svc.JoinChallenge(context.Background(), domain.JoinChallengeRequest{ChallengeID: ended.ID.String()}, userID.String())
	assert.ErrorIs(t, err, domain.ErrChallengeEnded)
}

func TestUpdateProgressCountsFromJoinTime(t *testing.T) {
	svc, _, db := setupTestService(t)
	userID := uuid.New()
	c := seedChallenge(t, db, domain.ChallengeCategoryDonation, 2, 50)

	// activity from before joining must not count
	seedDonationAt(t, db, userID, time.Now().Add(-2*time.Hour))

	_, err := svc.JoinChallenge(context.Background(), domain.JoinChallengeRequest{ChallengeID: c.ID.String()}, userID.String())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProgress(context.Background(), userID.String(), domain.ChallengeCategoryDonation))

	participations, err := svc.GetUserParticipations(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, participations, 1)
	assert.Equal(t, 0, participations[0].Progress)

	seedDonationAt(t, db, userID, time.Now().Add(time.Hour))

	require.NoError(t, svc.UpdateProgress(context.Background(), userID.String(), domain.ChallengeCategoryDonation))

	participations, err = svc.GetUserParticipations(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, participations[0].Progress)
	assert.False(t, participations[0].Completed)
}

func TestChallengeCompletionCreditsPointsExactlyOnce(t *testing.T) {
	svc, pointsService, db := setupTestService(t)
	userID := uuid.New()
	c := seedChallenge(t, db, domain.ChallengeCategoryDonation, 2, 50)

	_, err := svc.JoinChallenge(context.Background(), domain.JoinChallengeRequest{ChallengeID: c.ID.String()}, userID.String())
	require.NoError(t, err)

	seedDonationAt(t, db, userID, time.Now().Add(time.Hour))
	seedDonationAt(t, db, userID, time.Now().Add(2*time.Hour))

	require.NoError(t, svc.UpdateProgress(context.Background(), userID.String(), domain.ChallengeCategoryDonation))

	participations, err := svc.GetUserParticipations(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, participations, 1)
	assert.True(t, participations[0].Completed)
	assert.NotNil(t, participations[0].CompletedAt)
	assert.Equal(t, 50, participations[0].PointsEarned)

	balance, err := pointsService.GetUserPoints(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 50, balance.Balance)

	// re-running with no new activity changes nothing
	require.NoError(t, svc.UpdateProgress(context.Background(), userID.String(), domain.ChallengeCategoryDonation))

	balance, err = pointsService.GetUserPoints(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 50, balance.Balance)

	var ledgerRows int64
	require.NoError(t, db.Model(&entities.PointsTransaction{}).Where("user_id = ?", userID).Count(&ledgerRows).Error)
	assert.Equal(t, int64(1), ledgerRows)
}

func TestDonationTriggerAdvancesSustainability(t *testing.T) {
	svc, _, db := setupTestService(t)
	userID := uuid.New()
	c := seedChallenge(t, db, domain.ChallengeCategorySustainability, 1, 30)

	_, err := svc.JoinChallenge(context.Background(), domain.JoinChallengeRequest{ChallengeID: c.ID.String()}, userID.String())
	require.NoError(t, err)

	seedDonationAt(t, db, userID, time.Now().Add(time.Hour))

	// a donation-category trigger must also reach sustainability challenges
	require.NoError(t, svc.UpdateProgress(context.Background(), userID.String(), domain.ChallengeCategoryDonation))

	participations, err := svc.GetUserParticipations(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, participations, 1)
	assert.True(t, participations[0].Completed)
	assert.Equal(t, 30, participations[0].PointsEarned)
}

func TestUpdateProgressRejectsUnknownCategory(t *testing.T) {
	svc, _, _ := setupTestService(t)

	err := svc.UpdateProgress(context.Background(), uuid.New().String(), "gardening")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetActiveChallengesMarksJoined(t *testing.T) {
	svc, _, db := setupTestService(t)
	userID := uuid.New()
	joined := seedChallenge(t, db, domain.ChallengeCategoryRecipe, 3, 20)
	seedChallenge(t, db, domain.ChallengeCategoryCommunity, 3, 20)

	_, err := svc.JoinChallenge(context.Background(), domain.JoinChallengeRequest{ChallengeID: joined.ID.String()}, userID.String())
	require.NoError(t, err)

	challenges, err := svc.GetActiveChallenges(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, challenges, 2)

	byID := map[string]bool{}
	for _, c := range challenges {
		byID[c.ID] = c.Joined
	}
	assert.True(t, byID[joined.ID.String()])
}
