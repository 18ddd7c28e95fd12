package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	DonationStatusPending  = "pending"
	DonationStatusApproved = "approved"
	DonationStatusRejected = "rejected"
)

var (
	MessageSuccessCreateDonation = "donation posted successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageSuccessGetDonation    = "donation retrieved successfully"
	MessageSuccessUpdateDonation = "donation updated successfully"
	MessageSuccessDeleteDonation = "donation deleted successfully"

	MessageFailedCreateDonation = "failed to post donation"
	MessageFailedGetDonations   = "failed to retrieve donations"
	MessageFailedGetDonation    = "failed to retrieve donation"
	MessageFailedUpdateDonation = "failed to update donation"
	MessageFailedDeleteDonation = "failed to delete donation"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrDonationNotPending         = errors.New("donation can only be changed while pending moderation")
	ErrDonationNotApproved        = errors.New("donation is not approved")
	ErrTooManyImages              = errors.New("too many donation images")
)

type (
	CreateDonationRequest struct {
		Title       string                  `json:"title" form:"title" validate:"required,min=3"`
		Description string                  `json:"description" form:"description" validate:"required"`
		FoodType    string                  `json:"food_type" form:"food_type" validate:"required"`
		Quantity    string                  `json:"quantity" form:"quantity" validate:"required"`
		Location    string                  `json:"location" form:"location" validate:"required"`
		ContactInfo string                  `json:"contact_info" form:"contact_info" validate:"required"`
		Images      []*multipart.FileHeader `json:"images" form:"images"`
	}

	UpdateDonationRequest struct {
		Title       string `json:"title" validate:"omitempty,min=3"`
		Description string `json:"description" validate:"omitempty"`
		FoodType    string `json:"food_type" validate:"omitempty"`
		Quantity    string `json:"quantity" validate:"omitempty"`
		Location    string `json:"location" validate:"omitempty"`
		ContactInfo string `json:"contact_info" validate:"omitempty"`
	}

	DonationResponse struct {
		ID             string    `json:"id"`
		UserID         string    `json:"user_id"`
		DonorName      string    `json:"donor_name,omitempty"`
		Title          string    `json:"title"`
		Description    string    `json:"description"`
		FoodType       string    `json:"food_type"`
		Quantity       string    `json:"quantity"`
		Location       string    `json:"location"`
		ContactInfo    string    `json:"contact_info"`
		Images         []string  `json:"images"`
		ApprovalStatus string    `json:"approval_status"`
		ViewsCount     int       `json:"views_count"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}
)
