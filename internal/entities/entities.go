// Package entities contains core business entities.
package entities

import "time"

// TargetType discriminates feedback recipients.
type TargetType string

const (
	// TargetTeam addresses feedback to a whole team.
	TargetTeam TargetType = "team"
	// TargetMember addresses feedback to a single member.
	TargetMember TargetType = "member"
)

// Valid reports whether the target type is one of the known discriminators.
func (t TargetType) Valid() bool {
	return t == TargetTeam || t == TargetMember
}

// TeamMember is a coached person. Picture holds a data URL or a remote URL.
// Teams is populated only when the server embeds it.
type TeamMember struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
	Teams   []Team `json:"teams,omitempty"`
}

// Team groups members. Members is populated only when the server embeds it.
type Team struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Logo    string       `json:"logo,omitempty"`
	Members []TeamMember `json:"members,omitempty"`
}

// Feedback is a free-text note addressed to a team or a member.
// CreatedAt is server-assigned and immutable.
type Feedback struct {
	ID         int64      `json:"id"`
	TargetType TargetType `json:"target_type"`
	TargetID   int64      `json:"target_id"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreateTeamMemberRequest carries input for member creation.
type CreateTeamMemberRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

// CreateTeamRequest carries input for team creation.
type CreateTeamRequest struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// CreateFeedbackRequest carries input for feedback creation.
type CreateFeedbackRequest struct {
	TargetType TargetType `json:"target_type"`
	TargetID   int64      `json:"target_id"`
	Content    string     `json:"content"`
}

// AssignmentRequest is the write-only assign/unassign command. Its effect is
// observed only by re-reading teams and members afterward.
type AssignmentRequest struct {
	TeamID       int64 `json:"team_id"`
	TeamMemberID int64 `json:"team_member_id"`
}
