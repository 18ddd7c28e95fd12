package domain

import (
	"errors"
	"time"
)

const (
	ReservationStatusPending   = "pending"
	ReservationStatusApproved  = "approved"
	ReservationStatusRejected  = "rejected"
	ReservationStatusCompleted = "completed"
	ReservationStatusCancelled = "cancelled"
)

var (
	MessageSuccessCreateReservation = "donation request submitted successfully"
	MessageSuccessGetReservations   = "donation requests retrieved successfully"
	MessageSuccessUpdateReservation = "donation request updated successfully"
	MessageSuccessCancelReservation = "donation request cancelled successfully"

	MessageFailedCreateReservation = "failed to submit donation request"
	MessageFailedGetReservations   = "failed to retrieve donation requests"
	MessageFailedUpdateReservation = "failed to update donation request"
	MessageFailedCancelReservation = "failed to cancel donation request"

	ErrReservationNotFound     = errors.New("donation request not found")
	ErrOwnDonationRequest      = errors.New("cannot request your own donation")
	ErrDuplicateReservation    = errors.New("an open request for this donation already exists")
	ErrReservationNotPending   = errors.New("donation request is no longer pending")
	ErrReservationNotApproved  = errors.New("donation request is not approved")
	ErrReservationNotCloseable = errors.New("donation request cannot be cancelled in its current state")
)

type (
	CreateReservationRequest struct {
		DonationID string `json:"donation_id" validate:"required,uuid"`
		Message    string `json:"message" validate:"omitempty,max=500"`
	}

	ReservationDecisionRequest struct {
		ReservationID string `json:"reservation_id" validate:"required,uuid"`
		Status        string `json:"status" validate:"required,oneof=approved rejected"`
	}

	ReservationResponse struct {
		ID            string    `json:"id"`
		DonationID    string    `json:"donation_id"`
		DonationTitle string    `json:"donation_title,omitempty"`
		RequesterID   string    `json:"requester_id"`
		RequesterName string    `json:"requester_name,omitempty"`
		Message       string    `json:"message"`
		Status        string    `json:"status"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}
)
