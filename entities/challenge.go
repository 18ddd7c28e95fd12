package entities

import (
	"time"

	"github.com/google/uuid"
)

type Challenge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"` // donation, recipe, community, waste_reduction, sustainability
	TargetValue int       `json:"target_value"`
	Points      int       `json:"points"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsActive    bool      `json:"is_active"`

	Participants []*ChallengeParticipant `gorm:"foreignKey:ChallengeID"`
	Timestamp
}

type ChallengeParticipant struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ChallengeID  uuid.UUID  `gorm:"index" json:"challenge_id"`
	UserID       uuid.UUID  `gorm:"index" json:"user_id"`
	JoinedAt     time.Time  `json:"joined_at"`
	Progress     int        `json:"progress"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	PointsEarned int        `json:"points_earned"`

	Challenge *Challenge `gorm:"foreignKey:ChallengeID"`
	User      *User      `gorm:"foreignKey:UserID"`
	Timestamp
}
