package domain

import (
	"errors"
	"time"
)

const (
	FeedbackStatusNew      = "new"
	FeedbackStatusReviewed = "reviewed"
	FeedbackStatusResolved = "resolved"
)

var (
	MessageSuccessCreateFeedback = "feedback submitted successfully"
	MessageSuccessGetFeedback    = "feedback retrieved successfully"
	MessageSuccessUpdateFeedback = "feedback updated successfully"
	MessageSuccessDeleteFeedback = "feedback deleted successfully"

	MessageFailedCreateFeedback = "failed to submit feedback"
	MessageFailedGetFeedback    = "failed to retrieve feedback"
	MessageFailedUpdateFeedback = "failed to update feedback"
	MessageFailedDeleteFeedback = "failed to delete feedback"

	ErrFeedbackNotFound  = errors.New("feedback not found")
	ErrFeedbackLocked    = errors.New("feedback can no longer be changed once reviewed")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

type (
	CreateFeedbackRequest struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Subject string `json:"subject" validate:"required,min=3,max=200"`
		Message string `json:"message" validate:"required,min=3"`
	}

	UpdateFeedbackRequest struct {
		Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
		Subject string `json:"subject" validate:"omitempty,min=3,max=200"`
		Message string `json:"message" validate:"omitempty,min=3"`
	}

	FeedbackResponse struct {
		ID        string    `json:"id"`
		Rating    int       `json:"rating"`
		Subject   string    `json:"subject"`
		Message   string    `json:"message"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
