package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/internal/api/presenters"
	"github.com/rackiel/Foodify-sub001/pkg/feedback"
)

type (
	FeedbackHandler interface {
		CreateFeedback(c *fiber.Ctx) error
		GetMyFeedback(c *fiber.Ctx) error
		UpdateFeedback(c *fiber.Ctx) error
		DeleteFeedback(c *fiber.Ctx) error
	}

	feedbackHandler struct {
		feedbackService feedback.FeedbackService
		validator       *validator.Validate
	}
)

func NewFeedbackHandler(feedbackService feedback.FeedbackService, validator *validator.Validate) FeedbackHandler {
	return &feedbackHandler{
		feedbackService: feedbackService,
		validator:       validator,
	}
}

func (h *feedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFeedback, err)
	}

	res, err := h.feedbackService.CreateFeedback(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFeedback)
}

func (h *feedbackHandler) GetMyFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c)

	items, count, err := h.feedbackService.GetUserFeedback(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFeedback, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFeedback)
}

func (h *feedbackHandler) UpdateFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	feedbackID := c.Params("id")
	req := new(domain.UpdateFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFeedback, err)
	}

	if err := h.feedbackService.UpdateFeedback(c.Context(), feedbackID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFeedback, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFeedback)
}

func (h *feedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	feedbackID := c.Params("id")

	if err := h.feedbackService.DeleteFeedback(c.Context(), feedbackID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFeedback, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFeedback)
}
