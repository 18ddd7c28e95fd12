package entities

import (
	"github.com/google/uuid"
)

type UserPreferences struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	DietType      string    `json:"diet_type"`
	DailyCalories int       `json:"daily_calories"`
	DailyProtein  int       `json:"daily_protein"`
	Allergies     string    `gorm:"type:text" json:"allergies"`
	HouseholdSize int       `json:"household_size"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
