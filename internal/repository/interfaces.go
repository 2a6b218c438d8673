// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"coaching-app/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamMemberInterface exposes team member operations.
type TeamMemberInterface interface {
	CreateTeamMember(ctx context.Context, req entities.CreateTeamMemberRequest) (*entities.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error)
	GetTeamMember(ctx context.Context, id int64) (*entities.TeamMember, error)
}

// TeamInterface exposes team operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, req entities.CreateTeamRequest) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, id int64) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// AssignmentInterface exposes team membership operations.
type AssignmentInterface interface {
	AssignMember(ctx context.Context, teamID, memberID int64) error
	RemoveMember(ctx context.Context, teamID, memberID int64) error
}

// FeedbackInterface exposes feedback operations.
type FeedbackInterface interface {
	CreateFeedback(ctx context.Context, req entities.CreateFeedbackRequest) (*entities.Feedback, error)
	ListFeedback(ctx context.Context) ([]entities.Feedback, error)
	ListFeedbackByTarget(ctx context.Context, targetType entities.TargetType, targetID int64) ([]entities.Feedback, error)
}
