package domain

import "time"

var (
	MessageSuccessGetPreferences    = "preferences retrieved successfully"
	MessageSuccessUpdatePreferences = "preferences updated successfully"

	MessageFailedGetPreferences    = "failed to retrieve preferences"
	MessageFailedUpdatePreferences = "failed to update preferences"
)

type (
	UpdatePreferencesRequest struct {
		DietType      string `json:"diet_type" validate:"omitempty,oneof=none vegetarian vegan pescatarian halal keto"`
		DailyCalories int    `json:"daily_calories" validate:"omitempty,min=800,max=6000"`
		DailyProtein  int    `json:"daily_protein" validate:"omitempty,min=0,max=400"`
		Allergies     string `json:"allergies" validate:"omitempty,max=500"`
		HouseholdSize int    `json:"household_size" validate:"omitempty,min=1,max=20"`
	}

	PreferencesResponse struct {
		DietType      string    `json:"diet_type"`
		DailyCalories int       `json:"daily_calories"`
		DailyProtein  int       `json:"daily_protein"`
		Allergies     string    `json:"allergies"`
		HouseholdSize int       `json:"household_size"`
		UpdatedAt     time.Time `json:"updated_at"`
	}
)
