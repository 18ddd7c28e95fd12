package feedback

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	FeedbackService interface {
		CreateFeedback(ctx context.Context, req domain.CreateFeedbackRequest, userID string) (*domain.FeedbackResponse, error)
		GetUserFeedback(ctx context.Context, userID string, page, limit int) ([]*domain.FeedbackResponse, int64, error)
		UpdateFeedback(ctx context.Context, id string, req domain.UpdateFeedbackRequest, userID string) error
		DeleteFeedback(ctx context.Context, id string, userID string) error
	}

	feedbackService struct {
		feedbackRepository FeedbackRepository
	}
)

func NewFeedbackService(feedbackRepository FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepository: feedbackRepository}
}

func toFeedbackResponse(feedback *entities.CommunityFeedback) *domain.FeedbackResponse {
	return &domain.FeedbackResponse{
		ID:        feedback.ID.String(),
		Rating:    feedback.Rating,
		Subject:   feedback.Subject,
		Message:   feedback.Message,
		Status:    feedback.Status,
		CreatedAt: feedback.CreatedAt,
		UpdatedAt: feedback.UpdatedAt,
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, req domain.CreateFeedbackRequest, userID string) (*domain.FeedbackResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	feedback := &entities.CommunityFeedback{
		ID:      uuid.New(),
		UserID:  userUUID,
		Rating:  req.Rating,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.FeedbackStatusNew,
	}

	if err := s.feedbackRepository.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) GetUserFeedback(ctx context.Context, userID string, page, limit int) ([]*domain.FeedbackResponse, int64, error) {
	feedbackRows, count, err := s.feedbackRepository.GetUserFeedback(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.FeedbackResponse, 0, len(feedbackRows))
	for _, feedback := range feedbackRows {
		result = append(result, toFeedbackResponse(feedback))
	}

	return result, count, nil
}

func (s *feedbackService) UpdateFeedback(ctx context.Context, id string, req domain.UpdateFeedbackRequest, userID string) error {
	if req.Rating != 0 && (req.Rating < 1 || req.Rating > 5) {
		return domain.ErrInvalidRating
	}

	fields := map[string]interface{}{}
	if req.Rating != 0 {
		fields["rating"] = req.Rating
	}
	if req.Subject != "" {
		fields["subject"] = req.Subject
	}
	if req.Message != "" {
		fields["message"] = req.Message
	}

	if len(fields) == 0 {
		return nil
	}

	affected, err := s.feedbackRepository.UpdateFeedback(ctx, id, userID, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := s.feedbackRepository.GetFeedbackByID(ctx, id, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFeedbackNotFound
			}
			return err
		}
		return domain.ErrFeedbackLocked
	}
	return nil
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id string, userID string) error {
	affected, err := s.feedbackRepository.DeleteFeedback(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := s.feedbackRepository.GetFeedbackByID(ctx, id, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFeedbackNotFound
			}
			return err
		}
		return domain.ErrFeedbackLocked
	}
	return nil
}
