package postgres

import (
	"context"
	"errors"
	"fmt"

	"coaching-app/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertMemberQuery  = "INSERT INTO team_members(name, email, picture) VALUES($1, $2, $3) RETURNING id"
	selectMembersQuery = "SELECT id, name, email, picture FROM team_members ORDER BY id"
	selectMemberQuery  = "SELECT id, name, email, picture FROM team_members WHERE id=$1"

	selectAllMemberTeamsQuery = `
SELECT a.team_member_id, t.id, t.name, t.logo
FROM team_assignments a
JOIN teams t ON t.id = a.team_id
ORDER BY a.team_member_id, t.id`
	selectMemberTeamsQuery = `
SELECT t.id, t.name, t.logo
FROM team_assignments a
JOIN teams t ON t.id = a.team_id
WHERE a.team_member_id = $1
ORDER BY t.id`
)

// CreateTeamMember inserts a member and returns it with the assigned id.
func (p *Postgres) CreateTeamMember(ctx context.Context, req entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
	member := entities.TeamMember{
		Name:    req.Name,
		Email:   req.Email,
		Picture: req.Picture,
		Teams:   make([]entities.Team, 0),
	}

	if err := p.db.QueryRow(ctx, insertMemberQuery, req.Name, req.Email, req.Picture).Scan(&member.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrEmailExists
		}
		return nil, fmt.Errorf("insert team member: %w", err)
	}

	p.log.Infow("team member created", "id", member.ID, "email", member.Email)
	return &member, nil
}

// ListTeamMembers returns all members ordered by id, each with the teams
// they belong to embedded.
func (p *Postgres) ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error) {
	rows, err := p.db.Query(ctx, selectMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Picture); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		m.Teams = make([]entities.Team, 0)
		index[m.ID] = len(members)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}

	teamRows, err := p.db.Query(ctx, selectAllMemberTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list member teams: %w", err)
	}
	defer teamRows.Close()

	for teamRows.Next() {
		var memberID int64
		var team entities.Team
		if err := teamRows.Scan(&memberID, &team.ID, &team.Name, &team.Logo); err != nil {
			return nil, fmt.Errorf("scan member team: %w", err)
		}
		if i, ok := index[memberID]; ok {
			members[i].Teams = append(members[i].Teams, team)
		}
	}
	if err := teamRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate member teams: %w", err)
	}

	return members, nil
}

// GetTeamMember fetches one member by id with their teams embedded.
func (p *Postgres) GetTeamMember(ctx context.Context, id int64) (*entities.TeamMember, error) {
	var m entities.TeamMember
	err := p.db.QueryRow(ctx, selectMemberQuery, id).Scan(&m.ID, &m.Name, &m.Email, &m.Picture)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}

	rows, err := p.db.Query(ctx, selectMemberTeamsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get member teams: %w", err)
	}
	defer rows.Close()

	m.Teams = make([]entities.Team, 0)
	for rows.Next() {
		var team entities.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Logo); err != nil {
			return nil, fmt.Errorf("scan member team: %w", err)
		}
		m.Teams = append(m.Teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate member teams: %w", err)
	}

	return &m, nil
}
