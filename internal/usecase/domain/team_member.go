package domain

import (
	"context"
	"fmt"

	"coaching-app/internal/entities"
)

// CreateTeamMember validates input and creates a member.
func (u *Usecase) CreateTeamMember(ctx context.Context, req entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateTeamMember(ctx, req)
}

// ListTeamMembers returns all members.
func (u *Usecase) ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeamMembers(ctx)
}

// TeamMember returns one member by id.
func (u *Usecase) TeamMember(ctx context.Context, id int64) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", entities.ErrInvalidArgument)
	}

	return u.repo.GetTeamMember(ctx, id)
}
