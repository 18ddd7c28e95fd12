package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/internal/api/presenters"
	"github.com/rackiel/Foodify-sub001/pkg/challenge"
)

type (
	ChallengeHandler interface {
		CreateChallenge(c *fiber.Ctx) error
		GetActiveChallenges(c *fiber.Ctx) error
		JoinChallenge(c *fiber.Ctx) error
		GetMyParticipations(c *fiber.Ctx) error
		RefreshProgress(c *fiber.Ctx) error
	}

	challengeHandler struct {
		challengeService challenge.ChallengeService
		validator        *validator.Validate
	}
)

func NewChallengeHandler(challengeService challenge.ChallengeService, validator *validator.Validate) ChallengeHandler {
	return &challengeHandler{
		challengeService: challengeService,
		validator:        validator,
	}
}

func (h *challengeHandler) CreateChallenge(c *fiber.Ctx) error {
	req := new(domain.CreateChallengeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateChallenge, err)
	}

	res, err := h.challengeService.CreateChallenge(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateChallenge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateChallenge)
}

func (h *challengeHandler) GetActiveChallenges(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.challengeService.GetActiveChallenges(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChallenges, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChallenges)
}

func (h *challengeHandler) JoinChallenge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.JoinChallengeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedJoinChallenge, err)
	}

	res, err := h.challengeService.JoinChallenge(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedJoinChallenge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessJoinChallenge)
}

func (h *challengeHandler) GetMyParticipations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.challengeService.GetUserParticipations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetParticipation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetParticipation)
}

// RefreshProgress recomputes progress across all of the caller's open
// participations, for clients that want a pull-based refresh.
func (h *challengeHandler) RefreshProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.challengeService.UpdateProgress(c.Context(), userID, ""); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProgress, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProgress)
}
