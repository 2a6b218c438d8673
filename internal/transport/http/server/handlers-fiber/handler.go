// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"coaching-app/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the coaching API using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register mounts all API routes under /api.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/team-members", h.CreateTeamMember)
	api.Get("/team-members", h.ListTeamMembers)
	api.Get("/team-members/:id", h.GetTeamMember)

	api.Post("/teams", h.CreateTeam)
	api.Get("/teams", h.ListTeams)
	api.Get("/teams/:id", h.GetTeam)
	api.Get("/teams/:id/members", h.GetTeamMembers)
	api.Delete("/teams/:id", h.DeleteTeam)
	api.Delete("/teams/:id/members/:memberId", h.RemoveMemberFromTeam)

	api.Post("/assignments", h.AssignMemberToTeam)
	api.Get("/assignments", h.ListAssignments)
	api.Delete("/assignments", h.RemoveAssignment)

	api.Post("/feedback", h.CreateFeedback)
	api.Get("/feedback", h.ListFeedback)
	api.Get("/feedback/team/:id", h.GetFeedbackForTeam)
	api.Get("/feedback/member/:id", h.GetFeedbackForMember)
}
