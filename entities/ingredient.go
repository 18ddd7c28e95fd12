package entities

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"index" json:"user_id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	Unit           string     `json:"unit"`
	Quantity       float64    `json:"quantity"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Status         string     `json:"status"` // active, used, expired
	UsedAt         *time.Time `json:"used_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
