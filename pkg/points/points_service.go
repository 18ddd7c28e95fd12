package points

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
)

type (
	PointsService interface {
		GetUserPoints(ctx context.Context, userID string) (*domain.UserPoints, error)
		GetPointsHistory(ctx context.Context, userID string, page, limit int) ([]*domain.PointsTransactionResponse, int64, error)
		RewardPoints(ctx context.Context, req domain.RewardPointsRequest) error
	}

	pointsService struct {
		pointsRepository PointsRepository
	}
)

func NewPointsService(pointsRepository PointsRepository) PointsService {
	return &pointsService{pointsRepository: pointsRepository}
}

func (s *pointsService) GetUserPoints(ctx context.Context, userID string) (*domain.UserPoints, error) {
	stats, err := s.pointsRepository.GetUserPointsStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.UserPoints{
		Balance:       stats["balance"],
		TotalRewarded: stats["total_rewarded"],
		TotalUsed:     stats["total_used"],
	}, nil
}

func (s *pointsService) GetPointsHistory(ctx context.Context, userID string, page, limit int) ([]*domain.PointsTransactionResponse, int64, error) {
	transactions, count, err := s.pointsRepository.GetUserPointsTransactions(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.PointsTransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, &domain.PointsTransactionResponse{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Type:        tx.Type,
			Source:      tx.Source,
			Description: tx.Description,
			Balance:     tx.Balance,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return result, count, nil
}

func (s *pointsService) RewardPoints(ctx context.Context, req domain.RewardPointsRequest) error {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	currentBalance, err := s.pointsRepository.GetUserBalance(ctx, req.UserID)
	if err != nil {
		return err
	}

	newBalance := currentBalance + req.Amount

	description := fmt.Sprintf("Rewarded %d points for %s", req.Amount, req.Source)
	if req.Description != "" {
		description = req.Description
	}

	transaction := &entities.PointsTransaction{
		ID:          uuid.New(),
		UserID:      userUUID,
		Amount:      req.Amount,
		Type:        "Reward",
		Source:      req.Source,
		Description: description,
		Balance:     newBalance,
	}
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = time.Now()

	return s.pointsRepository.CreatePointsTransaction(ctx, transaction)
}
