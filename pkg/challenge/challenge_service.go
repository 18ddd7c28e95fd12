package challenge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/pkg/points"
	"gorm.io/gorm"
)

type (
	ChallengeService interface {
		CreateChallenge(ctx context.Context, req domain.CreateChallengeRequest) (*domain.ChallengeResponse, error)
		GetActiveChallenges(ctx context.Context, userID string) ([]*domain.ChallengeResponse, error)
		JoinChallenge(ctx context.Context, req domain.JoinChallengeRequest, userID string) (*domain.ParticipationResponse, error)
		GetUserParticipations(ctx context.Context, userID string) ([]*domain.ParticipationResponse, error)
		UpdateProgress(ctx context.Context, userID string, category string) error
	}

	challengeService struct {
		challengeRepository ChallengeRepository
		pointsService       points.PointsService
	}
)

func NewChallengeService(challengeRepository ChallengeRepository, pointsService points.PointsService) ChallengeService {
	return &challengeService{
		challengeRepository: challengeRepository,
		pointsService:       pointsService,
	}
}

func toChallengeResponse(challenge *entities.Challenge) *domain.ChallengeResponse {
	return &domain.ChallengeResponse{
		ID:          challenge.ID.String(),
		Title:       challenge.Title,
		Description: challenge.Description,
		Category:    challenge.Category,
		TargetValue: challenge.TargetValue,
		Points:      challenge.Points,
		StartDate:   challenge.StartDate,
		EndDate:     challenge.EndDate,
		IsActive:    challenge.IsActive,
	}
}

func toParticipationResponse(participant *entities.ChallengeParticipant) *domain.ParticipationResponse {
	resp := &domain.ParticipationResponse{
		ID:           participant.ID.String(),
		ChallengeID:  participant.ChallengeID.String(),
		JoinedAt:     participant.JoinedAt,
		Progress:     participant.Progress,
		Completed:    participant.Completed,
		CompletedAt:  participant.CompletedAt,
		PointsEarned: participant.PointsEarned,
	}
	if participant.Challenge != nil {
		resp.Challenge = toChallengeResponse(participant.Challenge)
		resp.TargetValue = participant.Challenge.TargetValue
	}
	return resp
}

func validCategory(category string) bool {
	switch category {
	case domain.ChallengeCategoryDonation,
		domain.ChallengeCategoryRecipe,
		domain.ChallengeCategoryCommunity,
		domain.ChallengeCategoryWasteReduction,
		domain.ChallengeCategorySustainability:
		return true
	}
	return false
}

func (s *challengeService) CreateChallenge(ctx context.Context, req domain.CreateChallengeRequest) (*domain.ChallengeResponse, error) {
	if !validCategory(req.Category) {
		return nil, domain.ErrInvalidCategory
	}

	challenge := &entities.Challenge{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetValue: req.TargetValue,
		Points:      req.Points,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    true,
	}

	if err := s.challengeRepository.CreateChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	return toChallengeResponse(challenge), nil
}

func (s *challengeService) GetActiveChallenges(ctx context.Context, userID string) ([]*domain.ChallengeResponse, error) {
	challenges, err := s.challengeRepository.GetActiveChallenges(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ChallengeResponse, 0, len(challenges))
	for _, challenge := range challenges {
		resp := toChallengeResponse(challenge)
		if _, err := s.challengeRepository.GetParticipant(ctx, challenge.ID.String(), userID); err == nil {
			resp.Joined = true
		}
		result = append(result, resp)
	}

	return result, nil
}

func (s *challengeService) JoinChallenge(ctx context.Context, req domain.JoinChallengeRequest, userID string) (*domain.ParticipationResponse, error) {
	challenge, err := s.challengeRepository.GetChallengeByID(ctx, req.ChallengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, err
	}

	now := time.Now()
	if !challenge.IsActive {
		return nil, domain.ErrChallengeNotActive
	}
	if challenge.EndDate.Before(now) {
		return nil, domain.ErrChallengeEnded
	}

	if _, err := s.challengeRepository.GetParticipant(ctx, req.ChallengeID, userID); err == nil {
		return nil, domain.ErrAlreadyJoined
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	participant := &entities.ChallengeParticipant{
		ID:          uuid.New(),
		ChallengeID: challenge.ID,
		UserID:      userUUID,
		JoinedAt:    now,
		Progress:    0,
	}

	if err := s.challengeRepository.CreateParticipant(ctx, participant); err != nil {
		return nil, err
	}

	participant.Challenge = challenge
	return toParticipationResponse(participant), nil
}

func (s *challengeService) GetUserParticipations(ctx context.Context, userID string) ([]*domain.ParticipationResponse, error) {
	participations, err := s.challengeRepository.GetUserParticipations(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ParticipationResponse, 0, len(participations))
	for _, participation := range participations {
		result = append(result, toParticipationResponse(participation))
	}

	return result, nil
}

func (s *challengeService) activityCount(ctx context.Context, userID string, category string, from, to time.Time) (int64, error) {
	switch category {
	case domain.ChallengeCategoryDonation:
		return s.challengeRepository.CountDonations(ctx, userID, from, to)
	case domain.ChallengeCategoryRecipe:
		return s.challengeRepository.CountRecipes(ctx, userID, from, to)
	case domain.ChallengeCategoryCommunity:
		return s.challengeRepository.CountComments(ctx, userID, from, to)
	case domain.ChallengeCategoryWasteReduction:
		return s.challengeRepository.CountUsedIngredients(ctx, userID, from, to)
	case domain.ChallengeCategorySustainability:
		// Sustainability spans both donating and using up ingredients.
		donations, err := s.challengeRepository.CountDonations(ctx, userID, from, to)
		if err != nil {
			return 0, err
		}
		used, err := s.challengeRepository.CountUsedIngredients(ctx, userID, from, to)
		if err != nil {
			return 0, err
		}
		return donations + used, nil
	}
	return 0, domain.ErrInvalidCategory
}

// UpdateProgress recomputes progress from scratch for every open
// participation, optionally narrowed to one category. Activity is counted in
// [joined_at, challenge end]. Completion credits the challenge points exactly
// once; re-running with no new activity changes nothing.
func (s *challengeService) UpdateProgress(ctx context.Context, userID string, category string) error {
	if category != "" && !validCategory(category) {
		return domain.ErrInvalidCategory
	}

	// Sustainability challenges also advance on donation and waste activity,
	// so a category trigger must include them.
	categories := []string{category}
	if category == domain.ChallengeCategoryDonation || category == domain.ChallengeCategoryWasteReduction {
		categories = append(categories, domain.ChallengeCategorySustainability)
	}
	if category == "" {
		categories = []string{""}
	}

	now := time.Now()
	seen := map[string]bool{}

	for _, cat := range categories {
		participations, err := s.challengeRepository.GetOpenParticipations(ctx, userID, cat, now)
		if err != nil {
			return err
		}

		for _, participation := range participations {
			if participation.Challenge == nil || seen[participation.ID.String()] {
				continue
			}
			seen[participation.ID.String()] = true

			count, err := s.activityCount(ctx, userID, participation.Challenge.Category,
				participation.JoinedAt, participation.Challenge.EndDate)
			if err != nil {
				return err
			}

			progress := int(count)

			if progress >= participation.Challenge.TargetValue {
				affected, err := s.challengeRepository.CompleteParticipant(ctx,
					participation.ID.String(), progress, participation.Challenge.Points, now)
				if err != nil {
					return err
				}
				if affected > 0 {
					rewardReq := domain.RewardPointsRequest{
						UserID:      userID,
						Amount:      participation.Challenge.Points,
						Source:      "challenge",
						Description: fmt.Sprintf("Completed challenge: %s", participation.Challenge.Title),
					}
					if err := s.pointsService.RewardPoints(ctx, rewardReq); err != nil {
						return err
					}
				}
				continue
			}

			if progress != participation.Progress {
				if err := s.challengeRepository.SaveProgress(ctx, participation.ID.String(), progress); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
