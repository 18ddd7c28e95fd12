package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/internal/utils/mailing"
	"github.com/rackiel/Foodify-sub001/pkg/donation"
	"gorm.io/gorm"
)

type (
	ReservationService interface {
		CreateReservation(ctx context.Context, req domain.CreateReservationRequest, userID string) (*domain.ReservationResponse, error)
		CancelReservation(ctx context.Context, id string, userID string) error
		DecideReservation(ctx context.Context, req domain.ReservationDecisionRequest, ownerID string) error
		CompleteReservation(ctx context.Context, id string, ownerID string) error
		GetUserReservations(ctx context.Context, userID string, page, limit int) ([]*domain.ReservationResponse, int64, error)
		GetOwnerReservations(ctx context.Context, ownerID string, page, limit int) ([]*domain.ReservationResponse, int64, error)
	}

	reservationService struct {
		reservationRepository ReservationRepository
		donationRepository    donation.DonationRepository
		mailer                mailing.Mailer
	}
)

func NewReservationService(
	reservationRepository ReservationRepository,
	donationRepository donation.DonationRepository,
	mailer mailing.Mailer,
) ReservationService {
	return &reservationService{
		reservationRepository: reservationRepository,
		donationRepository:    donationRepository,
		mailer:                mailer,
	}
}

func toReservationResponse(reservation *entities.DonationReservation) *domain.ReservationResponse {
	resp := &domain.ReservationResponse{
		ID:          reservation.ID.String(),
		DonationID:  reservation.DonationID.String(),
		RequesterID: reservation.RequesterID.String(),
		Message:     reservation.Message,
		Status:      reservation.Status,
		CreatedAt:   reservation.CreatedAt,
		UpdatedAt:   reservation.UpdatedAt,
	}
	if reservation.Donation != nil {
		resp.DonationTitle = reservation.Donation.Title
	}
	if reservation.Requester != nil {
		resp.RequesterName = reservation.Requester.Name
	}
	return resp
}

func (s *reservationService) CreateReservation(ctx context.Context, req domain.CreateReservationRequest, userID string) (*domain.ReservationResponse, error) {
	target, err := s.donationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if target.ApprovalStatus != domain.DonationStatusApproved {
		return nil, domain.ErrDonationNotApproved
	}

	if target.UserID.String() == userID {
		return nil, domain.ErrOwnDonationRequest
	}

	requesterUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	reservation := &entities.DonationReservation{
		ID:          uuid.New(),
		DonationID:  target.ID,
		RequesterID: requesterUUID,
		Message:     req.Message,
		Status:      domain.ReservationStatusPending,
	}

	if err := s.reservationRepository.CreateReservation(ctx, reservation); err != nil {
		return nil, err
	}

	if s.mailer != nil && target.User != nil {
		subject := "Foodify: new request for your donation"
		body := fmt.Sprintf("<p>Hi %s,</p><p>Someone requested your donation \"%s\". Open Foodify to approve or reject the request.</p>", target.User.Name, target.Title)
		if mailErr := s.mailer.Send(target.User.Email, subject, body); mailErr != nil {
			log.Printf("reservation mail to %s failed: %v", target.User.Email, mailErr)
		}
	}

	reservation.Donation = target
	return toReservationResponse(reservation), nil
}

func (s *reservationService) CancelReservation(ctx context.Context, id string, userID string) error {
	reservation, err := s.reservationRepository.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	if reservation.RequesterID.String() != userID {
		return domain.ErrReservationNotFound
	}

	affected, err := s.reservationRepository.UpdateStatus(ctx, id,
		[]string{domain.ReservationStatusPending, domain.ReservationStatusApproved},
		domain.ReservationStatusCancelled)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReservationNotCloseable
	}
	return nil
}

func (s *reservationService) DecideReservation(ctx context.Context, req domain.ReservationDecisionRequest, ownerID string) error {
	reservation, err := s.reservationRepository.GetReservationByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	if reservation.Donation == nil || reservation.Donation.UserID.String() != ownerID {
		return domain.ErrReservationNotFound
	}

	affected, err := s.reservationRepository.UpdateStatus(ctx, req.ReservationID,
		[]string{domain.ReservationStatusPending}, req.Status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReservationNotPending
	}

	if s.mailer != nil && reservation.Requester != nil {
		subject := fmt.Sprintf("Foodify: your donation request was %s", req.Status)
		body := fmt.Sprintf("<p>Hi %s,</p><p>Your request for \"%s\" was %s.</p>", reservation.Requester.Name, reservation.Donation.Title, req.Status)
		if mailErr := s.mailer.Send(reservation.Requester.Email, subject, body); mailErr != nil {
			log.Printf("decision mail to %s failed: %v", reservation.Requester.Email, mailErr)
		}
	}

	return nil
}

func (s *reservationService) CompleteReservation(ctx context.Context, id string, ownerID string) error {
	reservation, err := s.reservationRepository.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	if reservation.Donation == nil || reservation.Donation.UserID.String() != ownerID {
		return domain.ErrReservationNotFound
	}

	affected, err := s.reservationRepository.UpdateStatus(ctx, id,
		[]string{domain.ReservationStatusApproved}, domain.ReservationStatusCompleted)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReservationNotApproved
	}
	return nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string, page, limit int) ([]*domain.ReservationResponse, int64, error) {
	reservations, count, err := s.reservationRepository.GetUserReservations(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, toReservationResponse(reservation))
	}

	return result, count, nil
}

func (s *reservationService) GetOwnerReservations(ctx context.Context, ownerID string, page, limit int) ([]*domain.ReservationResponse, int64, error) {
	reservations, count, err := s.reservationRepository.GetOwnerReservations(ctx, ownerID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, toReservationResponse(reservation))
	}

	return result, count, nil
}
