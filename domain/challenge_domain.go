package domain

import (
	"errors"
	"time"
)

const (
	ChallengeCategoryDonation       = "donation"
	ChallengeCategoryRecipe         = "recipe"
	ChallengeCategoryCommunity      = "community"
	ChallengeCategoryWasteReduction = "waste_reduction"
	ChallengeCategorySustainability = "sustainability"
)

var (
	MessageSuccessCreateChallenge  = "challenge created successfully"
	MessageSuccessGetChallenges    = "challenges retrieved successfully"
	MessageSuccessJoinChallenge    = "challenge joined successfully"
	MessageSuccessGetParticipation = "challenge participation retrieved successfully"
	MessageSuccessUpdateProgress   = "challenge progress updated successfully"

	MessageFailedCreateChallenge  = "failed to create challenge"
	MessageFailedGetChallenges    = "failed to retrieve challenges"
	MessageFailedJoinChallenge    = "failed to join challenge"
	MessageFailedGetParticipation = "failed to retrieve challenge participation"
	MessageFailedUpdateProgress   = "failed to update challenge progress"

	ErrChallengeNotFound      = errors.New("challenge not found")
	ErrChallengeNotActive     = errors.New("challenge is not active")
	ErrChallengeEnded         = errors.New("challenge has already ended")
	ErrAlreadyJoined          = errors.New("already joined this challenge")
	ErrInvalidCategory        = errors.New("invalid challenge category")
	ErrNotParticipating       = errors.New("not participating in this challenge")
)

type (
	CreateChallengeRequest struct {
		Title       string    `json:"title" validate:"required,min=3"`
		Description string    `json:"description" validate:"omitempty"`
		Category    string    `json:"category" validate:"required,oneof=donation recipe community waste_reduction sustainability"`
		TargetValue int       `json:"target_value" validate:"required,min=1"`
		Points      int       `json:"points" validate:"required,min=1"`
		StartDate   time.Time `json:"start_date" validate:"required"`
		EndDate     time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	}

	JoinChallengeRequest struct {
		ChallengeID string `json:"challenge_id" validate:"required,uuid"`
	}

	ChallengeResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Category    string    `json:"category"`
		TargetValue int       `json:"target_value"`
		Points      int       `json:"points"`
		StartDate   time.Time `json:"start_date"`
		EndDate     time.Time `json:"end_date"`
		IsActive    bool      `json:"is_active"`
		Joined      bool      `json:"joined"`
	}

	ParticipationResponse struct {
		ID           string     `json:"id"`
		ChallengeID  string     `json:"challenge_id"`
		Challenge    *ChallengeResponse `json:"challenge,omitempty"`
		JoinedAt     time.Time  `json:"joined_at"`
		Progress     int        `json:"progress"`
		TargetValue  int        `json:"target_value"`
		Completed    bool       `json:"completed"`
		CompletedAt  *time.Time `json:"completed_at,omitempty"`
		PointsEarned int        `json:"points_earned"`
	}
)
