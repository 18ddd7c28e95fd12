package donation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/internal/utils/storage"
	"gorm.io/gorm"
)

const MaxDonationImages = 5

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error)
		GetApprovedDonations(ctx context.Context, foodType string, page, limit int) ([]*domain.DonationResponse, int64, error)
		GetDonationByID(ctx context.Context, id string, userID string) (*domain.DonationResponse, error)
		GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*domain.DonationResponse, int64, error)
		UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, userID string) error
		DeleteDonation(ctx context.Context, id string, userID string) error
	}

	progressUpdater interface {
		UpdateProgress(ctx context.Context, userID string, category string) error
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
		progress           progressUpdater
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3, progress progressUpdater) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
		progress:           progress,
	}
}

func decodeImages(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return []string{}
	}
	return images
}

func toDonationResponse(donation *entities.FoodDonation) *domain.DonationResponse {
	resp := &domain.DonationResponse{
		ID:             donation.ID.String(),
		UserID:         donation.UserID.String(),
		Title:          donation.Title,
		Description:    donation.Description,
		FoodType:       donation.FoodType,
		Quantity:       donation.Quantity,
		Location:       donation.Location,
		ContactInfo:    donation.ContactInfo,
		Images:         decodeImages(donation.Images),
		ApprovalStatus: donation.ApprovalStatus,
		ViewsCount:     donation.ViewsCount,
		CreatedAt:      donation.CreatedAt,
		UpdatedAt:      donation.UpdatedAt,
	}
	if donation.User != nil {
		resp.DonorName = donation.User.Name
	}
	return resp
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if len(req.Images) > MaxDonationImages {
		return nil, domain.ErrTooManyImages
	}

	donationID := uuid.New()

	imageURLs := make([]string, 0, len(req.Images))
	for i, image := range req.Images {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s-%d", donationID.String(), i),
			image,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURLs = append(imageURLs, s.s3.GetPublicLinkKey(objectKey))
	}

	encodedImages, err := json.Marshal(imageURLs)
	if err != nil {
		return nil, err
	}

	donation := &entities.FoodDonation{
		ID:             donationID,
		UserID:         userUUID,
		Title:          req.Title,
		Description:    req.Description,
		FoodType:       req.FoodType,
		Quantity:       req.Quantity,
		Location:       req.Location,
		ContactInfo:    req.ContactInfo,
		Images:         string(encodedImages),
		ApprovalStatus: domain.DonationStatusPending,
		ViewsCount:     0,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	if s.progress != nil {
		if err := s.progress.UpdateProgress(ctx, userID, domain.ChallengeCategoryDonation); err != nil {
			log.Printf("challenge progress update failed for user %s: %v", userID, err)
		}
	}

	return toDonationResponse(donation), nil
}

func (s *donationService) GetApprovedDonations(ctx context.Context, foodType string, page, limit int) ([]*domain.DonationResponse, int64, error) {
	donations, count, err := s.donationRepository.GetApprovedDonations(ctx, foodType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonationResponse(donation))
	}

	return result, count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string, userID string) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	// Unapproved donations are only visible to their owner.
	if donation.ApprovalStatus != domain.DonationStatusApproved && donation.UserID.String() != userID {
		return nil, domain.ErrDonationNotFound
	}

	if err := s.donationRepository.IncrementViews(ctx, id); err != nil {
		log.Printf("views increment failed for donation %s: %v", id, err)
	} else {
		donation.ViewsCount++
	}

	return toDonationResponse(donation), nil
}

func (s *donationService) GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*domain.DonationResponse, int64, error) {
	donations, count, err := s.donationRepository.GetUserDonations(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonationResponse(donation))
	}

	return result, count, nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, userID string) error {
	fields := map[string]interface{}{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.FoodType != "" {
		fields["food_type"] = req.FoodType
	}
	if req.Quantity != "" {
		fields["quantity"] = req.Quantity
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.ContactInfo != "" {
		fields["contact_info"] = req.ContactInfo
	}

	if len(fields) == 0 {
		return nil
	}

	affected, err := s.donationRepository.UpdateDonation(ctx, id, userID, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := s.donationRepository.GetDonationByID(ctx, id); err != nil {
			return domain.ErrDonationNotFound
		}
		return domain.ErrDonationNotPending
	}
	return nil
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, userID string) error {
	affected, err := s.donationRepository.DeleteDonation(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := s.donationRepository.GetDonationByID(ctx, id); err != nil {
			return domain.ErrDonationNotFound
		}
		return domain.ErrDonationNotPending
	}
	return nil
}
