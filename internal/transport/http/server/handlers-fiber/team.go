package handlers_fiber

import (
	"net/http"

	"coaching-app/internal/mapper"
	"coaching-app/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// CreateTeam creates a team from the request body.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var body dto.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	team, err := h.uc.CreateTeam(c.Context(), mapper.FromDTOCreateTeam(body))
	if err != nil {
		h.log.Infow("create team failed", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTOTeam(*team))
}

// ListTeams returns all teams with embedded members.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamList(teams))
}

// GetTeam returns one team with members by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	team, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeam(*team))
}

// GetTeamMembers returns the members of one team.
func (h *Handler) GetTeamMembers(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	team, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamMemberList(team.Members))
}

// DeleteTeam removes a team.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.DeleteTeam(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "team deleted"})
}

// RemoveMemberFromTeam drops a member from a team via path params.
func (h *Handler) RemoveMemberFromTeam(c *fiber.Ctx) error {
	teamID, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid team id")
	}
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return badRequest(c, "invalid member id")
	}

	if err := h.uc.RemoveMember(c.Context(), teamID, memberID); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "member removed from team"})
}
