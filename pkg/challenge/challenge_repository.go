package challenge

import (
	"context"
	"time"

	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	ChallengeRepository interface {
		GetActiveChallenges(ctx context.Context, now time.Time) ([]*entities.Challenge, error)
		GetChallengeByID(ctx context.Context, id string) (*entities.Challenge, error)
		CreateChallenge(ctx context.Context, challenge *entities.Challenge) error
		GetParticipant(ctx context.Context, challengeID string, userID string) (*entities.ChallengeParticipant, error)
		CreateParticipant(ctx context.Context, participant *entities.ChallengeParticipant) error
		GetUserParticipations(ctx context.Context, userID string) ([]*entities.ChallengeParticipant, error)
		GetOpenParticipations(ctx context.Context, userID string, category string, now time.Time) ([]*entities.ChallengeParticipant, error)
		SaveProgress(ctx context.Context, participantID string, progress int) error
		CompleteParticipant(ctx context.Context, participantID string, progress int, points int, completedAt time.Time) (int64, error)

		// Per-category activity counts within the participation window.
		CountDonations(ctx context.Context, userID string, from, to time.Time) (int64, error)
		CountRecipes(ctx context.Context, userID string, from, to time.Time) (int64, error)
		CountComments(ctx context.Context, userID string, from, to time.Time) (int64, error)
		CountUsedIngredients(ctx context.Context, userID string, from, to time.Time) (int64, error)
	}

	challengeRepository struct {
		db *gorm.DB
	}
)

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) GetActiveChallenges(ctx context.Context, now time.Time) ([]*entities.Challenge, error) {
	var challenges []*entities.Challenge
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("end_date asc").
		Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *challengeRepository) GetChallengeByID(ctx context.Context, id string) (*entities.Challenge, error) {
	var challenge entities.Challenge
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) CreateChallenge(ctx context.Context, challenge *entities.Challenge) error {
	return r.db.WithContext(ctx).Create(challenge).Error
}

func (r *challengeRepository) GetParticipant(ctx context.Context, challengeID string, userID string) (*entities.ChallengeParticipant, error) {
	var participant entities.ChallengeParticipant
	if err := r.db.WithContext(ctx).
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *challengeRepository) CreateParticipant(ctx context.Context, participant *entities.ChallengeParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *challengeRepository) GetUserParticipations(ctx context.Context, userID string) ([]*entities.ChallengeParticipant, error) {
	var participations []*entities.ChallengeParticipant
	if err := r.db.WithContext(ctx).
		Preload("Challenge").
		Where("user_id = ?", userID).
		Order("joined_at desc").
		Find(&participations).Error; err != nil {
		return nil, err
	}
	return participations, nil
}

// GetOpenParticipations returns the user's rows still worth recomputing:
// not completed, challenge active and not past its end date. Each row carries
// its own joined_at, so several joined challenges of one category are counted
// from their own join times.
func (r *challengeRepository) GetOpenParticipations(ctx context.Context, userID string, category string, now time.Time) ([]*entities.ChallengeParticipant, error) {
	var participations []*entities.ChallengeParticipant

	query := r.db.WithContext(ctx).
		Preload("Challenge").
		Joins("JOIN challenges ON challenges.id = challenge_participants.challenge_id").
		Where("challenge_participants.user_id = ? AND challenge_participants.completed = ?", userID, false).
		Where("challenges.is_active = ? AND challenges.end_date >= ?", true, now)

	if category != "" {
		query = query.Where("challenges.category = ?", category)
	}

	if err := query.Find(&participations).Error; err != nil {
		return nil, err
	}

	return participations, nil
}

func (r *challengeRepository) SaveProgress(ctx context.Context, participantID string, progress int) error {
	return r.db.WithContext(ctx).Model(&entities.ChallengeParticipant{}).
		Where("id = ?", participantID).
		Update("progress", progress).Error
}

// CompleteParticipant flips the row to completed and credits points in one
// conditional update. The completed_at IS NULL guard makes the credit
// exactly-once even when two recomputations race.
func (r *challengeRepository) CompleteParticipant(ctx context.Context, participantID string, progress int, points int, completedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.ChallengeParticipant{}).
		Where("id = ? AND completed_at IS NULL", participantID).
		Updates(map[string]interface{}{
			"progress":      progress,
			"completed":     true,
			"completed_at":  completedAt,
			"points_earned": points,
		})
	return result.RowsAffected, result.Error
}

func (r *challengeRepository) CountDonations(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.FoodDonation{}).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *challengeRepository) CountRecipes(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *challengeRepository) CountComments(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.RecipeComment{}).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (r *challengeRepository) CountUsedIngredients(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("user_id = ? AND status = ? AND used_at IS NOT NULL AND used_at >= ? AND used_at <= ?",
			userID, "used", from, to).
		Count(&count).Error
	return count, err
}
