package ingredient

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/internal/utils/mailing"
	"github.com/rackiel/Foodify-sub001/pkg/user"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest, userID string) (*domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, userID string, status string, page, limit int) ([]*domain.IngredientResponse, int64, error)
		GetIngredientByID(ctx context.Context, id string, userID string) (*domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) error
		MarkUsed(ctx context.Context, id string, userID string) error
		Restore(ctx context.Context, id string, userID string) error
		DeleteIngredient(ctx context.Context, id string, userID string) error
		GetKitchenStats(ctx context.Context, userID string) (*domain.KitchenStatsResponse, error)
	}

	// progressUpdater is satisfied by the challenge service; ingredient usage
	// counts toward waste reduction challenges.
	progressUpdater interface {
		UpdateProgress(ctx context.Context, userID string, category string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		userRepository       user.UserRepository
		mailer               mailing.Mailer
		progress             progressUpdater
	}
)

func NewIngredientService(
	ingredientRepository IngredientRepository,
	userRepository user.UserRepository,
	mailer mailing.Mailer,
	progress progressUpdater,
) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		userRepository:       userRepository,
		mailer:               mailer,
		progress:             progress,
	}
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func parseExpirationDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.ErrInvalidExpirationDate
	}
	return &parsed, nil
}

func toIngredientResponse(ingredient *entities.Ingredient) *domain.IngredientResponse {
	return &domain.IngredientResponse{
		ID:             ingredient.ID.String(),
		Name:           ingredient.Name,
		Category:       ingredient.Category,
		Unit:           ingredient.Unit,
		Quantity:       ingredient.Quantity,
		ExpirationDate: ingredient.ExpirationDate,
		Status:         ingredient.Status,
		UsedAt:         ingredient.UsedAt,
		CreatedAt:      ingredient.CreatedAt,
	}
}

// sweep runs the lazy expiration pass for one owner and emails them when
// anything newly expired. Mail failures are logged, never surfaced.
func (s *ingredientService) sweep(ctx context.Context, userID string) (int64, error) {
	swept, err := s.ingredientRepository.SweepExpired(ctx, userID, startOfToday())
	if err != nil {
		return 0, err
	}

	if swept > 0 && s.mailer != nil {
		owner, err := s.userRepository.GetUserByID(ctx, userID)
		if err == nil {
			subject := "Foodify: ingredients expired"
			body := fmt.Sprintf("<p>Hi %s,</p><p>%d of your ingredients passed their expiration date and were marked expired. Open your kitchen to review them.</p>", owner.Name, swept)
			if mailErr := s.mailer.Send(owner.Email, subject, body); mailErr != nil {
				log.Printf("expiration mail to %s failed: %v", owner.Email, mailErr)
			}
		}
	}

	return swept, nil
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest, userID string) (*domain.IngredientResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	expirationDate, err := parseExpirationDate(req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	ingredient := &entities.Ingredient{
		ID:             uuid.New(),
		UserID:         userUUID,
		Name:           req.Name,
		Category:       req.Category,
		Unit:           req.Unit,
		Quantity:       req.Quantity,
		ExpirationDate: expirationDate,
		Status:         domain.IngredientStatusActive,
	}

	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return nil, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, userID string, status string, page, limit int) ([]*domain.IngredientResponse, int64, error) {
	switch status {
	case "", "all", domain.IngredientStatusActive, domain.IngredientStatusUsed, domain.IngredientStatusExpired:
	default:
		return nil, 0, domain.ErrInvalidStatusFilter
	}

	if _, err := s.sweep(ctx, userID); err != nil {
		return nil, 0, err
	}

	ingredients, count, err := s.ingredientRepository.GetIngredients(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, toIngredientResponse(ingredient))
	}

	return result, count, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string, userID string) (*domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) error {
	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Category != "" {
		fields["category"] = req.Category
	}
	if req.Unit != "" {
		fields["unit"] = req.Unit
	}
	if req.Quantity > 0 {
		fields["quantity"] = req.Quantity
	}
	if req.ExpirationDate != "" {
		expirationDate, err := parseExpirationDate(req.ExpirationDate)
		if err != nil {
			return err
		}
		fields["expiration_date"] = expirationDate
	}

	if len(fields) == 0 {
		return nil
	}

	affected, err := s.ingredientRepository.UpdateIngredient(ctx, id, userID, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

func (s *ingredientService) MarkUsed(ctx context.Context, id string, userID string) error {
	now := time.Now()
	affected, err := s.ingredientRepository.UpdateIngredientStatus(ctx, id, userID, domain.IngredientStatusActive, map[string]interface{}{
		"status":  domain.IngredientStatusUsed,
		"used_at": now,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either missing, foreign, or not active anymore.
		if _, err := s.ingredientRepository.GetIngredientByID(ctx, id, userID); err != nil {
			return domain.ErrIngredientNotFound
		}
		return domain.ErrInvalidIngredientState
	}

	if s.progress != nil {
		if err := s.progress.UpdateProgress(ctx, userID, domain.ChallengeCategoryWasteReduction); err != nil {
			log.Printf("challenge progress update failed for user %s: %v", userID, err)
		}
	}

	return nil
}

// Restore returns a used or expired ingredient to active. Restoring from
// expired clears the expiration date so the row cannot immediately re-expire
// on the next sweep; restoring from used keeps it.
func (s *ingredientService) Restore(ctx context.Context, id string, userID string) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	var fields map[string]interface{}
	switch ingredient.Status {
	case domain.IngredientStatusExpired:
		fields = map[string]interface{}{
			"status":          domain.IngredientStatusActive,
			"expiration_date": nil,
		}
	case domain.IngredientStatusUsed:
		fields = map[string]interface{}{
			"status":  domain.IngredientStatusActive,
			"used_at": nil,
		}
	default:
		return domain.ErrInvalidIngredientState
	}

	affected, err := s.ingredientRepository.UpdateIngredientStatus(ctx, id, userID, ingredient.Status, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvalidIngredientState
	}
	return nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string, userID string) error {
	affected, err := s.ingredientRepository.DeleteIngredient(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

func (s *ingredientService) GetKitchenStats(ctx context.Context, userID string) (*domain.KitchenStatsResponse, error) {
	swept, err := s.sweep(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.ingredientRepository.CountByStatus(ctx, userID, "all")
	if err != nil {
		return nil, err
	}
	active, err := s.ingredientRepository.CountByStatus(ctx, userID, domain.IngredientStatusActive)
	if err != nil {
		return nil, err
	}
	used, err := s.ingredientRepository.CountByStatus(ctx, userID, domain.IngredientStatusUsed)
	if err != nil {
		return nil, err
	}
	expired, err := s.ingredientRepository.CountByStatus(ctx, userID, domain.IngredientStatusExpired)
	if err != nil {
		return nil, err
	}

	soon := startOfToday().AddDate(0, 0, 3)
	expiringSoon, err := s.ingredientRepository.GetExpiringSoon(ctx, userID, soon)
	if err != nil {
		return nil, err
	}

	expiringSoonResult := make([]*domain.IngredientResponse, 0, len(expiringSoon))
	for _, ingredient := range expiringSoon {
		expiringSoonResult = append(expiringSoonResult, toIngredientResponse(ingredient))
	}

	var wasteRatio float64
	if total > 0 {
		wasteRatio = float64(expired) / float64(total)
	}

	return &domain.KitchenStatsResponse{
		TotalItems:   total,
		ActiveItems:  active,
		UsedItems:    used,
		ExpiredItems: expired,
		ExpiringSoon: expiringSoonResult,
		WasteRatio:   wasteRatio,
		SweptExpired: swept,
		LastSweptAt:  time.Now(),
	}, nil
}
