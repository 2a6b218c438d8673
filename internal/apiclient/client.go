// Package apiclient talks to the coaching API over HTTP.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coaching-app/internal/entities"

	"go.uber.org/zap"
)

// Client is the remote API surface consumed by the sync layer.
type Client interface {
	CreateTeamMember(ctx context.Context, req entities.CreateTeamMemberRequest) (*entities.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error)

	CreateTeam(ctx context.Context, req entities.CreateTeamRequest) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, teamID int64) (*entities.Team, error)
	GetTeamMembers(ctx context.Context, teamID int64) ([]entities.TeamMember, error)
	DeleteTeam(ctx context.Context, teamID int64) error
	RemoveMemberFromTeam(ctx context.Context, teamID, memberID int64) error

	CreateFeedback(ctx context.Context, req entities.CreateFeedbackRequest) (*entities.Feedback, error)
	ListFeedback(ctx context.Context) ([]entities.Feedback, error)
	ListFeedbackByTeam(ctx context.Context, teamID int64) ([]entities.Feedback, error)
	ListFeedbackByMember(ctx context.Context, memberID int64) ([]entities.Feedback, error)

	AssignMemberToTeam(ctx context.Context, teamID, memberID int64) error
}

// HTTPClient implements Client against a base URL.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

var _ Client = (*HTTPClient)(nil)

// New constructs an HTTPClient. baseURL points at the API root, e.g.
// "http://localhost:8080/api".
func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.Named("apiclient"),
	}
}

// CreateTeamMember creates a member and returns the server-confirmed entity.
func (c *HTTPClient) CreateTeamMember(ctx context.Context, req entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
	var member entities.TeamMember
	if err := c.do(ctx, http.MethodPost, "/team-members", req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// ListTeamMembers returns all members.
func (c *HTTPClient) ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error) {
	var members []entities.TeamMember
	if err := c.do(ctx, http.MethodGet, "/team-members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CreateTeam creates a team and returns the server-confirmed entity.
func (c *HTTPClient) CreateTeam(ctx context.Context, req entities.CreateTeamRequest) (*entities.Team, error) {
	var team entities.Team
	if err := c.do(ctx, http.MethodPost, "/teams", req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// ListTeams returns all teams with embedded members.
func (c *HTTPClient) ListTeams(ctx context.Context) ([]entities.Team, error) {
	var teams []entities.Team
	if err := c.do(ctx, http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetTeam returns one team with embedded members.
func (c *HTTPClient) GetTeam(ctx context.Context, teamID int64) (*entities.Team, error) {
	var team entities.Team
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%d", teamID), nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// GetTeamMembers returns the members of one team.
func (c *HTTPClient) GetTeamMembers(ctx context.Context, teamID int64) ([]entities.TeamMember, error) {
	var members []entities.TeamMember
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%d/members", teamID), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// DeleteTeam deletes a team.
func (c *HTTPClient) DeleteTeam(ctx context.Context, teamID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/teams/%d", teamID), nil, nil)
}

// RemoveMemberFromTeam drops a member from a team.
func (c *HTTPClient) RemoveMemberFromTeam(ctx context.Context, teamID, memberID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/teams/%d/members/%d", teamID, memberID), nil, nil)
}

// CreateFeedback creates feedback and returns the server-confirmed entity.
func (c *HTTPClient) CreateFeedback(ctx context.Context, req entities.CreateFeedbackRequest) (*entities.Feedback, error) {
	var fb entities.Feedback
	if err := c.do(ctx, http.MethodPost, "/feedback", req, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

// ListFeedback returns all feedback.
func (c *HTTPClient) ListFeedback(ctx context.Context) ([]entities.Feedback, error) {
	var fbs []entities.Feedback
	if err := c.do(ctx, http.MethodGet, "/feedback", nil, &fbs); err != nil {
		return nil, err
	}
	return fbs, nil
}

// ListFeedbackByTeam returns feedback addressed to a team.
func (c *HTTPClient) ListFeedbackByTeam(ctx context.Context, teamID int64) ([]entities.Feedback, error) {
	var fbs []entities.Feedback
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/feedback/team/%d", teamID), nil, &fbs); err != nil {
		return nil, err
	}
	return fbs, nil
}

// ListFeedbackByMember returns feedback addressed to a member.
func (c *HTTPClient) ListFeedbackByMember(ctx context.Context, memberID int64) ([]entities.Feedback, error) {
	var fbs []entities.Feedback
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/feedback/member/%d", memberID), nil, &fbs); err != nil {
		return nil, err
	}
	return fbs, nil
}

// AssignMemberToTeam assigns a member to a team. The server returns no body;
// the effect is observed by re-reading teams and members.
func (c *HTTPClient) AssignMemberToTeam(ctx context.Context, teamID, memberID int64) error {
	req := entities.AssignmentRequest{TeamID: teamID, TeamMemberID: memberID}
	return c.do(ctx, http.MethodPost, "/assignments", req, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.failure(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// failure turns a non-2xx response into an *APIError. The server error body
// is {"error": "...", "code"?: "..."}; when it cannot be decoded the message
// falls back to the HTTP status line.
func (c *HTTPClient) failure(resp *http.Response) error {
	apiErr := &APIError{
		Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		Status:  resp.StatusCode,
	}

	var details map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&details); err == nil {
		apiErr.Details = details
		if msg, ok := details["error"].(string); ok && msg != "" {
			apiErr.Message = msg
		}
	}

	c.log.Debugw("api failure", "status", apiErr.Status, "message", apiErr.Message)
	return apiErr
}
