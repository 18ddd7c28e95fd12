package entities

import (
	"github.com/google/uuid"
)

type FoodDonation struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"index" json:"user_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	FoodType       string    `json:"food_type"`
	Quantity       string    `json:"quantity"`
	Location       string    `json:"location"`
	ContactInfo    string    `json:"contact_info"`
	Images         string    `gorm:"type:text" json:"images"` // JSON array of image URLs
	ApprovalStatus string    `json:"approval_status"`         // pending, approved, rejected
	ViewsCount     int       `json:"views_count"`

	User         *User                  `gorm:"foreignKey:UserID"`
	Reservations []*DonationReservation `gorm:"foreignKey:DonationID"`
	Timestamp
}

type DonationReservation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DonationID  uuid.UUID `gorm:"index" json:"donation_id"`
	RequesterID uuid.UUID `gorm:"index" json:"requester_id"`
	Message     string    `json:"message"`
	Status      string    `json:"status"` // pending, approved, rejected, completed, cancelled

	Donation  *FoodDonation `gorm:"foreignKey:DonationID"`
	Requester *User         `gorm:"foreignKey:RequesterID"`
	Timestamp
}
