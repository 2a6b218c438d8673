package usecase

import (
	"context"

	"coaching-app/internal/entities"
)

// TeamMemberUsecaseInterface abstracts team member operations for the delivery layer.
type TeamMemberUsecaseInterface interface {
	CreateTeamMember(ctx context.Context, req entities.CreateTeamMemberRequest) (*entities.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error)
	TeamMember(ctx context.Context, id int64) (*entities.TeamMember, error)
}

// TeamUsecaseInterface abstracts team operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, req entities.CreateTeamRequest) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	Team(ctx context.Context, id int64) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// AssignmentUsecaseInterface abstracts team membership operations.
type AssignmentUsecaseInterface interface {
	AssignMember(ctx context.Context, teamID, memberID int64) error
	RemoveMember(ctx context.Context, teamID, memberID int64) error
}

// FeedbackUsecaseInterface abstracts feedback operations.
type FeedbackUsecaseInterface interface {
	CreateFeedback(ctx context.Context, req entities.CreateFeedbackRequest) (*entities.Feedback, error)
	ListFeedback(ctx context.Context) ([]entities.Feedback, error)
	FeedbackByTarget(ctx context.Context, targetType entities.TargetType, targetID int64) ([]entities.Feedback, error)
}
