package postgres

import (
	"context"
	"errors"
	"fmt"

	"coaching-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery  = "INSERT INTO teams(name, logo) VALUES($1, $2) RETURNING id"
	selectTeamsQuery = "SELECT id, name, logo FROM teams ORDER BY id"
	selectTeamQuery  = "SELECT id, name, logo FROM teams WHERE id=$1"
	deleteTeamQuery  = "DELETE FROM teams WHERE id=$1"

	selectAllMembershipsQuery = `
SELECT a.team_id, m.id, m.name, m.email, m.picture
FROM team_assignments a
JOIN team_members m ON m.id = a.team_member_id
ORDER BY a.team_id, m.id`
	selectTeamMembershipQuery = `
SELECT m.id, m.name, m.email, m.picture
FROM team_assignments a
JOIN team_members m ON m.id = a.team_member_id
WHERE a.team_id = $1
ORDER BY m.id`
)

// CreateTeam inserts a team and returns it with the assigned id. A new team
// starts with an empty member list.
func (p *Postgres) CreateTeam(ctx context.Context, req entities.CreateTeamRequest) (*entities.Team, error) {
	team := entities.Team{
		Name:    req.Name,
		Logo:    req.Logo,
		Members: make([]entities.TeamMember, 0),
	}

	if err := p.db.QueryRow(ctx, insertTeamQuery, req.Name, req.Logo).Scan(&team.ID); err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "id", team.ID, "name", team.Name)
	return &team, nil
}

// ListTeams returns all teams with their members embedded.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, selectTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Logo); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		t.Members = make([]entities.TeamMember, 0)
		index[t.ID] = len(teams)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	memberRows, err := p.db.Query(ctx, selectAllMembershipsQuery)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var teamID int64
		var m entities.TeamMember
		if err := memberRows.Scan(&teamID, &m.ID, &m.Name, &m.Email, &m.Picture); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		if i, ok := index[teamID]; ok {
			teams[i].Members = append(teams[i].Members, m)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memberships: %w", err)
	}

	return teams, nil
}

// GetTeam fetches one team with members by id.
func (p *Postgres) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, selectTeamQuery, id).Scan(&t.ID, &t.Name, &t.Logo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	rows, err := p.db.Query(ctx, selectTeamMembershipQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	t.Members = make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Picture); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		t.Members = append(t.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return &t, nil
}

// DeleteTeam removes a team; assignment rows cascade.
func (p *Postgres) DeleteTeam(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteTeamQuery, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}

	p.log.Infow("team deleted", "id", id)
	return nil
}
