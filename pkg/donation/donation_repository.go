package donation

import (
	"context"

	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.FoodDonation) error
		GetDonationByID(ctx context.Context, id string) (*entities.FoodDonation, error)
		GetApprovedDonations(ctx context.Context, foodType string, page, limit int) ([]*entities.FoodDonation, int64, error)
		GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*entities.FoodDonation, int64, error)
		UpdateDonation(ctx context.Context, id string, userID string, fields map[string]interface{}) (int64, error)
		DeleteDonation(ctx context.Context, id string, userID string) (int64, error)
		IncrementViews(ctx context.Context, id string) error
		SetApprovalStatus(ctx context.Context, id string, status string) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.FoodDonation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.FoodDonation, error) {
	var donation entities.FoodDonation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetApprovedDonations(ctx context.Context, foodType string, page, limit int) ([]*entities.FoodDonation, int64, error) {
	var donations []*entities.FoodDonation
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("approval_status = ?", "approved")
	if foodType != "" && foodType != "all" {
		query = query.Where("food_type = ?", foodType)
	}

	if err := query.Model(&entities.FoodDonation{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("User").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*entities.FoodDonation, int64, error) {
	var donations []*entities.FoodDonation
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.FoodDonation{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

// UpdateDonation only touches rows that are still pending moderation and owned
// by the caller; the affected-row count carries the outcome.
func (r *donationRepository) UpdateDonation(ctx context.Context, id string, userID string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entities.FoodDonation{}).
		Where("id = ? AND user_id = ? AND approval_status = ?", id, userID, "pending").
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id string, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND approval_status = ?", id, userID, "pending").
		Delete(&entities.FoodDonation{})
	return result.RowsAffected, result.Error
}

func (r *donationRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.FoodDonation{}).
		Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

// SetApprovalStatus is the moderation hook; residents never reach it through
// the API, team officers act through a separate back office.
func (r *donationRepository) SetApprovalStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.FoodDonation{}).
		Where("id = ?", id).
		Update("approval_status", status).Error
}
