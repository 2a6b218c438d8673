package domain

import (
	"context"
	"fmt"

	"coaching-app/internal/entities"
)

// CreateTeam validates input and creates a team.
func (u *Usecase) CreateTeam(ctx context.Context, req entities.CreateTeamRequest) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.Name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateTeam(ctx, req)
}

// ListTeams returns all teams with embedded members.
func (u *Usecase) ListTeams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// Team returns one team with members by id.
func (u *Usecase) Team(ctx context.Context, id int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", entities.ErrInvalidArgument)
	}

	return u.repo.GetTeam(ctx, id)
}

// DeleteTeam removes a team and its assignments.
func (u *Usecase) DeleteTeam(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", entities.ErrInvalidArgument)
	}

	return u.repo.DeleteTeam(ctx, id)
}
