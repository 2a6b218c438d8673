package handlers_fiber

import (
	"net/http"

	"coaching-app/internal/entities"
	"coaching-app/internal/mapper"
	"coaching-app/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// CreateFeedback creates a feedback entry from the request body.
func (h *Handler) CreateFeedback(c *fiber.Ctx) error {
	var body dto.CreateFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	fb, err := h.uc.CreateFeedback(c.Context(), mapper.FromDTOCreateFeedback(body))
	if err != nil {
		h.log.Infow("create feedback failed", "target_type", body.TargetType, "target_id", body.TargetID, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTOFeedback(*fb))
}

// ListFeedback returns all feedback, newest first.
func (h *Handler) ListFeedback(c *fiber.Ctx) error {
	fbs, err := h.uc.ListFeedback(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOFeedbackList(fbs))
}

// GetFeedbackForTeam returns feedback addressed to one team.
func (h *Handler) GetFeedbackForTeam(c *fiber.Ctx) error {
	return h.feedbackByTarget(c, entities.TargetTeam)
}

// GetFeedbackForMember returns feedback addressed to one member.
func (h *Handler) GetFeedbackForMember(c *fiber.Ctx) error {
	return h.feedbackByTarget(c, entities.TargetMember)
}

func (h *Handler) feedbackByTarget(c *fiber.Ctx, targetType entities.TargetType) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	fbs, err := h.uc.FeedbackByTarget(c.Context(), targetType, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOFeedbackList(fbs))
}
