package handlers_fiber

import (
	"net/http"

	"coaching-app/internal/mapper"
	"coaching-app/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// CreateTeamMember creates a member from the request body.
func (h *Handler) CreateTeamMember(c *fiber.Ctx) error {
	var body dto.CreateTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	member, err := h.uc.CreateTeamMember(c.Context(), mapper.FromDTOCreateTeamMember(body))
	if err != nil {
		h.log.Infow("create team member failed", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTOTeamMember(*member))
}

// ListTeamMembers returns all members.
func (h *Handler) ListTeamMembers(c *fiber.Ctx) error {
	members, err := h.uc.ListTeamMembers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamMemberList(members))
}

// GetTeamMember returns one member by id.
func (h *Handler) GetTeamMember(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	member, err := h.uc.TeamMember(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamMember(*member))
}
