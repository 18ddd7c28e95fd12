package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPoints        = "points retrieved successfully"
	MessageSuccessGetPointsHistory = "points history retrieved successfully"

	MessageFailedGetPoints        = "failed to retrieve points"
	MessageFailedGetPointsHistory = "failed to retrieve points history"

	ErrInsufficientPoints = errors.New("insufficient points")
)

type (
	UserPoints struct {
		Balance       int `json:"balance"`
		TotalRewarded int `json:"total_rewarded"`
		TotalUsed     int `json:"total_used"`
	}

	PointsTransactionResponse struct {
		ID          string    `json:"id"`
		Amount      int       `json:"amount"`
		Type        string    `json:"type"`
		Source      string    `json:"source,omitempty"`
		Description string    `json:"description"`
		Balance     int       `json:"balance"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RewardPointsRequest struct {
		UserID      string `json:"user_id" validate:"required,uuid"`
		Amount      int    `json:"amount" validate:"required,min=1"`
		Source      string `json:"source" validate:"required"`
		Description string `json:"description"`
	}
)
