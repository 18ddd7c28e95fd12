package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/internal/api/presenters"
	"github.com/rackiel/Foodify-sub001/pkg/preferences"
)

type (
	PreferencesHandler interface {
		GetPreferences(c *fiber.Ctx) error
		UpdatePreferences(c *fiber.Ctx) error
	}

	preferencesHandler struct {
		preferencesService preferences.PreferencesService
		validator          *validator.Validate
	}
)

func NewPreferencesHandler(preferencesService preferences.PreferencesService, validator *validator.Validate) PreferencesHandler {
	return &preferencesHandler{
		preferencesService: preferencesService,
		validator:          validator,
	}
}

func (h *preferencesHandler) GetPreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.preferencesService.GetPreferences(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPreferences, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPreferences)
}

func (h *preferencesHandler) UpdatePreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdatePreferencesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePreferences, err)
	}

	res, err := h.preferencesService.UpdatePreferences(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePreferences, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePreferences)
}
