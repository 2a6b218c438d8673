package handlers_fiber

import (
	"net/http"

	"coaching-app/internal/mapper"
	"coaching-app/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// AssignMemberToTeam puts a member on a team. The response carries no entity;
// clients observe the effect by re-reading teams and members.
func (h *Handler) AssignMemberToTeam(c *fiber.Ctx) error {
	var body dto.AssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.AssignMember(c.Context(), body.TeamID, body.TeamMemberID); err != nil {
		h.log.Infow("assign member failed", "team_id", body.TeamID, "member_id", body.TeamMemberID, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.MessageResponse{Message: "member assigned to team"})
}

// ListAssignments returns teams with embedded members, the materialized view
// of every assignment.
func (h *Handler) ListAssignments(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamList(teams))
}

// RemoveAssignment drops a member from a team via the request body.
func (h *Handler) RemoveAssignment(c *fiber.Ctx) error {
	var body dto.AssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.RemoveMember(c.Context(), body.TeamID, body.TeamMemberID); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "member removed from team"})
}
