package entities

import (
	"github.com/google/uuid"
)

type CommunityFeedback struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"index" json:"user_id"`
	Rating  int       `json:"rating"` // 1-5
	Subject string    `json:"subject"`
	Message string    `gorm:"type:text" json:"message"`
	Status  string    `json:"status"` // new, reviewed, resolved

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
