package postgres

import (
	"context"
	"errors"
	"fmt"

	"coaching-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	teamExistsQuery   = "SELECT 1 FROM teams WHERE id=$1"
	memberExistsQuery = "SELECT 1 FROM team_members WHERE id=$1"

	insertAssignmentQuery = `
INSERT INTO team_assignments(team_id, team_member_id)
VALUES ($1, $2)
ON CONFLICT (team_id, team_member_id) DO NOTHING`
	deleteAssignmentQuery = "DELETE FROM team_assignments WHERE team_id=$1 AND team_member_id=$2"
)

// AssignMember puts a member on a team. Repeating an existing assignment is
// a no-op.
func (p *Postgres) AssignMember(ctx context.Context, teamID, memberID int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.checkPair(ctx, tx, teamID, memberID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, insertAssignmentQuery, teamID, memberID); err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("member assigned", "team_id", teamID, "member_id", memberID)
	return nil
}

// RemoveMember drops a member from a team. Removing a membership that does
// not exist is a no-op as long as both sides exist.
func (p *Postgres) RemoveMember(ctx context.Context, teamID, memberID int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.checkPair(ctx, tx, teamID, memberID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, deleteAssignmentQuery, teamID, memberID); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("member removed", "team_id", teamID, "member_id", memberID)
	return nil
}

func (p *Postgres) checkPair(ctx context.Context, tx pgx.Tx, teamID, memberID int64) error {
	var one int
	if err := tx.QueryRow(ctx, teamExistsQuery, teamID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrTeamNotFound
		}
		return fmt.Errorf("team lookup: %w", err)
	}
	if err := tx.QueryRow(ctx, memberExistsQuery, memberID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrMemberNotFound
		}
		return fmt.Errorf("member lookup: %w", err)
	}
	return nil
}
