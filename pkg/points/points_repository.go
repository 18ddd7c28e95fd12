package points

import (
	"context"
	"errors"

	"github.com/rackiel/Foodify-sub001/entities"
	"gorm.io/gorm"
)

type (
	PointsRepository interface {
		GetUserBalance(ctx context.Context, userID string) (int, error)
		GetUserPointsStats(ctx context.Context, userID string) (map[string]int, error)
		CreatePointsTransaction(ctx context.Context, tx *entities.PointsTransaction) error
		GetUserPointsTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.PointsTransaction, int64, error)
	}

	pointsRepository struct {
		db *gorm.DB
	}
)

func NewPointsRepository(db *gorm.DB) PointsRepository {
	return &pointsRepository{db: db}
}

func (r *pointsRepository) GetUserBalance(ctx context.Context, userID string) (int, error) {
	// The latest transaction row carries the running balance.
	var latestTx entities.PointsTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&latestTx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return latestTx.Balance, nil
}

func (r *pointsRepository) GetUserPointsStats(ctx context.Context, userID string) (map[string]int, error) {
	var totalRewarded int
	rewardQuery := r.db.WithContext(ctx).
		Model(&entities.PointsTransaction{}).
		Where("user_id = ? AND type = ?", userID, "Reward").
		Select("COALESCE(SUM(amount), 0) as total")
	if err := rewardQuery.Row().Scan(&totalRewarded); err != nil {
		return nil, err
	}

	var totalUsed int
	useQuery := r.db.WithContext(ctx).
		Model(&entities.PointsTransaction{}).
		Where("user_id = ? AND type = ? AND amount < 0", userID, "Use").
		Select("COALESCE(SUM(amount), 0) as total")
	if err := useQuery.Row().Scan(&totalUsed); err != nil {
		return nil, err
	}
	totalUsed = -totalUsed

	balance, err := r.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"balance":        balance,
		"total_rewarded": totalRewarded,
		"total_used":     totalUsed,
	}, nil
}

func (r *pointsRepository) CreatePointsTransaction(ctx context.Context, tx *entities.PointsTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *pointsRepository) GetUserPointsTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.PointsTransaction, int64, error) {
	var transactions []*entities.PointsTransaction
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.PointsTransaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}
