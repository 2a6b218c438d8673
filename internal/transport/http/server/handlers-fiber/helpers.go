package handlers_fiber

import (
	"errors"
	"net/http"

	"coaching-app/internal/entities"
	"coaching-app/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := ""
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = "INVALID_ARGUMENT"
		msg = err.Error()
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusConflict
		code = "DUPLICATE_EMAIL"
		msg = "duplicate email"
	case errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		msg = "team member not found"
	case errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		msg = "team not found"
	case errors.Is(err, entities.ErrFeedbackTargetNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		msg = "feedback target not found"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg, Code: "INVALID_ARGUMENT"})
}

func pathID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
