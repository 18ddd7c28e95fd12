package domain

import (
	"errors"
	"time"
)

const (
	IngredientStatusActive  = "active"
	IngredientStatusUsed    = "used"
	IngredientStatusExpired = "expired"
)

var (
	MessageSuccessAddIngredient     = "ingredient added successfully"
	MessageSuccessUpdateIngredient  = "ingredient updated successfully"
	MessageSuccessDeleteIngredient  = "ingredient deleted successfully"
	MessageSuccessGetIngredients    = "ingredients retrieved successfully"
	MessageSuccessMarkUsed          = "ingredient marked as used"
	MessageSuccessRestoreIngredient = "ingredient restored successfully"
	MessageSuccessGetKitchenStats   = "kitchen statistics retrieved successfully"

	MessageFailedAddIngredient     = "failed to add ingredient"
	MessageFailedUpdateIngredient  = "failed to update ingredient"
	MessageFailedDeleteIngredient  = "failed to delete ingredient"
	MessageFailedGetIngredients    = "failed to retrieve ingredients"
	MessageFailedMarkUsed          = "failed to mark ingredient as used"
	MessageFailedRestoreIngredient = "failed to restore ingredient"
	MessageFailedGetKitchenStats   = "failed to retrieve kitchen statistics"

	ErrIngredientNotFound     = errors.New("ingredient not found or not owned by user")
	ErrInvalidIngredientState = errors.New("ingredient is not in a state that allows this action")
	ErrInvalidExpirationDate  = errors.New("invalid expiration date")
	ErrInvalidStatusFilter    = errors.New("invalid status filter")
)

type (
	AddIngredientRequest struct {
		Name           string  `json:"name" validate:"required"`
		Category       string  `json:"category" validate:"required"`
		Unit           string  `json:"unit" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty"`
	}

	UpdateIngredientRequest struct {
		Name           string  `json:"name" validate:"omitempty"`
		Category       string  `json:"category" validate:"omitempty"`
		Unit           string  `json:"unit" validate:"omitempty"`
		Quantity       float64 `json:"quantity" validate:"omitempty,gt=0"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty"`
	}

	IngredientResponse struct {
		ID             string     `json:"id"`
		Name           string     `json:"name"`
		Category       string     `json:"category"`
		Unit           string     `json:"unit"`
		Quantity       float64    `json:"quantity"`
		ExpirationDate *time.Time `json:"expiration_date,omitempty"`
		Status         string     `json:"status"`
		UsedAt         *time.Time `json:"used_at,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}

	KitchenStatsResponse struct {
		TotalItems    int64                 `json:"total_items"`
		ActiveItems   int64                 `json:"active_items"`
		UsedItems     int64                 `json:"used_items"`
		ExpiredItems  int64                 `json:"expired_items"`
		ExpiringSoon  []*IngredientResponse `json:"expiring_soon"`
		WasteRatio    float64               `json:"waste_ratio"`
		SweptExpired  int64                 `json:"swept_expired"`
		LastSweptAt   time.Time             `json:"last_swept_at"`
	}
)
