package entities

import (
	"github.com/google/uuid"
)

type PointsTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Amount      int       `json:"amount"`
	Type        string    `json:"type"` // Reward, Use
	Source      string    `json:"source,omitempty"`
	Description string    `json:"description"`
	Balance     int       `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
