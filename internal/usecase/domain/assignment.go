package domain

import (
	"context"
	"fmt"

	"coaching-app/internal/entities"
)

// AssignMember puts a member on a team.
func (u *Usecase) AssignMember(ctx context.Context, teamID, memberID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID <= 0 || memberID <= 0 {
		return fmt.Errorf("%w: team_id and team_member_id are required", entities.ErrInvalidArgument)
	}

	return u.repo.AssignMember(ctx, teamID, memberID)
}

// RemoveMember drops a member from a team.
func (u *Usecase) RemoveMember(ctx context.Context, teamID, memberID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID <= 0 || memberID <= 0 {
		return fmt.Errorf("%w: team_id and team_member_id are required", entities.ErrInvalidArgument)
	}

	return u.repo.RemoveMember(ctx, teamID, memberID)
}
