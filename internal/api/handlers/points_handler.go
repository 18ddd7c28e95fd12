package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/internal/api/presenters"
	"github.com/rackiel/Foodify-sub001/pkg/points"
)

type (
	PointsHandler interface {
		GetPoints(c *fiber.Ctx) error
		GetPointsHistory(c *fiber.Ctx) error
	}

	pointsHandler struct {
		pointsService points.PointsService
	}
)

func NewPointsHandler(pointsService points.PointsService) PointsHandler {
	return &pointsHandler{pointsService: pointsService}
}

func (h *pointsHandler) GetPoints(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.pointsService.GetUserPoints(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPoints, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPoints)
}

func (h *pointsHandler) GetPointsHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c)

	items, count, err := h.pointsService.GetPointsHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPointsHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetPointsHistory)
}
