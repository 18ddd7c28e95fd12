package preferences

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

const (
	defaultDietType      = "none"
	defaultDailyCalories = 2000
	defaultDailyProtein  = 60
	defaultHouseholdSize = 1
)

type (
	PreferencesService interface {
		GetPreferences(ctx context.Context, userID string) (*domain.PreferencesResponse, error)
		UpdatePreferences(ctx context.Context, req domain.UpdatePreferencesRequest, userID string) (*domain.PreferencesResponse, error)
	}

	preferencesService struct {
		preferencesRepository PreferencesRepository
	}
)

func NewPreferencesService(preferencesRepository PreferencesRepository) PreferencesService {
	return &preferencesService{preferencesRepository: preferencesRepository}
}

func toPreferencesResponse(prefs *entities.UserPreferences) *domain.PreferencesResponse {
	return &domain.PreferencesResponse{
		DietType:      prefs.DietType,
		DailyCalories: prefs.DailyCalories,
		DailyProtein:  prefs.DailyProtein,
		Allergies:     prefs.Allergies,
		HouseholdSize: prefs.HouseholdSize,
		UpdatedAt:     prefs.UpdatedAt,
	}
}

// getOrCreate lazily seeds a defaults row the first time a user touches their
// preferences.
func (s *preferencesService) getOrCreate(ctx context.Context, userID string) (*entities.UserPreferences, error) {
	prefs, err := s.preferencesRepository.GetByUserID(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	prefs = &entities.UserPreferences{
		ID:            uuid.New(),
		UserID:        userUUID,
		DietType:      defaultDietType,
		DailyCalories: defaultDailyCalories,
		DailyProtein:  defaultDailyProtein,
		HouseholdSize: defaultHouseholdSize,
	}

	if err := s.preferencesRepository.Create(ctx, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}

func (s *preferencesService) GetPreferences(ctx context.Context, userID string) (*domain.PreferencesResponse, error) {
	prefs, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toPreferencesResponse(prefs), nil
}

func (s *preferencesService) UpdatePreferences(ctx context.Context, req domain.UpdatePreferencesRequest, userID string) (*domain.PreferencesResponse, error) {
	if _, err := s.getOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.DietType != "" {
		fields["diet_type"] = req.DietType
	}
	if req.DailyCalories > 0 {
		fields["daily_calories"] = req.DailyCalories
	}
	if req.DailyProtein > 0 {
		fields["daily_protein"] = req.DailyProtein
	}
	if req.Allergies != "" {
		fields["allergies"] = req.Allergies
	}
	if req.HouseholdSize > 0 {
		fields["household_size"] = req.HouseholdSize
	}

	if len(fields) > 0 {
		if err := s.preferencesRepository.Update(ctx, userID, fields); err != nil {
			return nil, err
		}
	}

	prefs, err := s.preferencesRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toPreferencesResponse(prefs), nil
}
