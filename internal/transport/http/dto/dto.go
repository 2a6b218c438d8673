// Package dto contains wire shapes of the HTTP API.
package dto

import "time"

// TeamMember is the wire shape of a coached person.
type TeamMember struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
	Teams   []Team `json:"teams,omitempty"`
}

// Team is the wire shape of a team. Members is always present in listings,
// empty when the team has none.
type Team struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Logo    string       `json:"logo,omitempty"`
	Members []TeamMember `json:"members"`
}

// Feedback is the wire shape of a feedback entry.
type Feedback struct {
	ID         int64     `json:"id"`
	TargetType string    `json:"target_type"`
	TargetID   int64     `json:"target_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateTeamMemberRequest is the POST /team-members body.
type CreateTeamMemberRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// CreateTeamRequest is the POST /teams body.
type CreateTeamRequest struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// CreateFeedbackRequest is the POST /feedback body.
type CreateFeedbackRequest struct {
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	Content    string `json:"content"`
}

// AssignmentRequest is the POST/DELETE /assignments body.
type AssignmentRequest struct {
	TeamID       int64 `json:"team_id"`
	TeamMemberID int64 `json:"team_member_id"`
}

// ErrorResponse is the uniform non-2xx body. The sync client derives its
// typed failure message from Error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse acknowledges body-less effects.
type MessageResponse struct {
	Message string `json:"message"`
}
