package feedback

import (
	"context"

	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	FeedbackRepository interface {
		CreateFeedback(ctx context.Context, feedback *entities.CommunityFeedback) error
		GetFeedbackByID(ctx context.Context, id string, userID string) (*entities.CommunityFeedback, error)
		GetUserFeedback(ctx context.Context, userID string, page, limit int) ([]*entities.CommunityFeedback, int64, error)
		UpdateFeedback(ctx context.Context, id string, userID string, fields map[string]interface{}) (int64, error)
		DeleteFeedback(ctx context.Context, id string, userID string) (int64, error)
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entities.CommunityFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) GetFeedbackByID(ctx context.Context, id string, userID string) (*entities.CommunityFeedback, error) {
	var feedback entities.CommunityFeedback
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) GetUserFeedback(ctx context.Context, userID string, page, limit int) ([]*entities.CommunityFeedback, int64, error) {
	var feedbackRows []*entities.CommunityFeedback
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.CommunityFeedback{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&feedbackRows).Error; err != nil {
		return nil, 0, err
	}

	return feedbackRows, count, nil
}

// UpdateFeedback only touches rows still in the 'new' state and owned by the
// caller; any later state leaves the row untouched.
func (r *feedbackRepository) UpdateFeedback(ctx context.Context, id string, userID string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.CommunityFeedback{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, "new").
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *feedbackRepository) DeleteFeedback(ctx context.Context, id string, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, "new").
		Delete(&entities.CommunityFeedback{})
	return result.RowsAffected, result.Error
}
