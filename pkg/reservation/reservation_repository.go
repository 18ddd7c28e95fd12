package reservation

import (
	"context"

	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	ReservationRepository interface {
		CreateReservation(ctx context.Context, reservation *entities.DonationReservation) error
		GetReservationByID(ctx context.Context, id string) (*entities.DonationReservation, error)
		GetUserReservations(ctx context.Context, requesterID string, page, limit int) ([]*entities.DonationReservation, int64, error)
		GetOwnerReservations(ctx context.Context, ownerID string, page, limit int) ([]*entities.DonationReservation, int64, error)
		UpdateStatus(ctx context.Context, id string, fromStatuses []string, toStatus string) (int64, error)
	}

	reservationRepository struct {
		db *gorm.DB
	}
)

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// CreateReservation inserts the request inside one transaction together with
// the duplicate check, so two concurrent requests for the same donation cannot
// both slip past it.
func (r *reservationRepository) CreateReservation(ctx context.Context, reservation *entities.DonationReservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&entities.DonationReservation{}).
			Where("donation_id = ? AND requester_id = ? AND status IN ?",
				reservation.DonationID, reservation.RequesterID,
				[]string{"pending", "approved"}).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return domain.ErrDuplicateReservation
		}
		return tx.Create(reservation).Error
	})
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.DonationReservation, error) {
	var reservation entities.DonationReservation
	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.User").
		Preload("Requester").
		Where("id = ?", id).
		First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) GetUserReservations(ctx context.Context, requesterID string, page, limit int) ([]*entities.DonationReservation, int64, error) {
	var reservations []*entities.DonationReservation
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("requester_id = ?", requesterID)

	if err := query.Model(&entities.DonationReservation{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Donation").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&reservations).Error; err != nil {
		return nil, 0, err
	}

	return reservations, count, nil
}

func (r *reservationRepository) GetOwnerReservations(ctx context.Context, ownerID string, page, limit int) ([]*entities.DonationReservation, int64, error) {
	var reservations []*entities.DonationReservation
	var count int64

	offset := (page - 1) * limit

	base := r.db.WithContext(ctx).Model(&entities.DonationReservation{}).
		Joins("JOIN food_donations ON food_donations.id = donation_reservations.donation_id").
		Where("food_donations.user_id = ?", ownerID)

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := base.Preload("Donation").Preload("Requester").
		Offset(offset).Limit(limit).
		Order("donation_reservations.created_at desc").
		Find(&reservations).Error; err != nil {
		return nil, 0, err
	}

	return reservations, count, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id string, fromStatuses []string, toStatus string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.DonationReservation{}).
		Where("id = ? AND status IN ?", id, fromStatuses).
		Update("status", toStatus)
	return result.RowsAffected, result.Error
}
