package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"coaching-app/internal/entities"
	"coaching-app/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorDuplicateEmail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrEmailExists)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "DUPLICATE_EMAIL", body.Code)
	require.Equal(t, "duplicate email", body.Error)
}

func TestWriteErrorNotFoundMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected dto.ErrorResponse
	}{
		{
			name:     "member",
			err:      entities.ErrMemberNotFound,
			expected: dto.ErrorResponse{Error: "team member not found", Code: "NOT_FOUND"},
		},
		{
			name:     "team",
			err:      entities.ErrTeamNotFound,
			expected: dto.ErrorResponse{Error: "team not found", Code: "NOT_FOUND"},
		},
		{
			name:     "feedback_target",
			err:      entities.ErrFeedbackTargetNotFound,
			expected: dto.ErrorResponse{Error: "feedback target not found", Code: "NOT_FOUND"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusNotFound, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.expected, body)
		})
	}
}

func TestWriteErrorInvalidArgumentKeepsMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("name is required: %w", entities.ErrInvalidArgument))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "INVALID_ARGUMENT", body.Code)
	require.Contains(t, body.Error, "name is required")
}

func TestWriteErrorUnknownBecomesInternal(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("pg connection reset"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "internal error", body.Error, "internal details never leak to clients")
}
