// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"coaching-app/internal/entities"
	"coaching-app/internal/transport/http/dto"
)

// ToDTOTeamMember maps entities.TeamMember to transport model.
func ToDTOTeamMember(m entities.TeamMember) dto.TeamMember {
	out := dto.TeamMember{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Picture: m.Picture,
	}
	for _, t := range m.Teams {
		out.Teams = append(out.Teams, ToDTOTeam(t))
	}
	return out
}

// ToDTOTeamMemberList maps a slice of members to transport slice.
func ToDTOTeamMemberList(list []entities.TeamMember) []dto.TeamMember {
	res := make([]dto.TeamMember, 0, len(list))
	for _, m := range list {
		res = append(res, ToDTOTeamMember(m))
	}
	return res
}

// ToDTOTeam maps entities.Team to transport model.
func ToDTOTeam(t entities.Team) dto.Team {
	members := make([]dto.TeamMember, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, dto.TeamMember{
			ID:      m.ID,
			Name:    m.Name,
			Email:   m.Email,
			Picture: m.Picture,
		})
	}

	return dto.Team{
		ID:      t.ID,
		Name:    t.Name,
		Logo:    t.Logo,
		Members: members,
	}
}

// ToDTOTeamList maps a slice of teams to transport slice.
func ToDTOTeamList(list []entities.Team) []dto.Team {
	res := make([]dto.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTeam(t))
	}
	return res
}

// ToDTOFeedback maps entities.Feedback to transport model.
func ToDTOFeedback(fb entities.Feedback) dto.Feedback {
	return dto.Feedback{
		ID:         fb.ID,
		TargetType: string(fb.TargetType),
		TargetID:   fb.TargetID,
		Content:    fb.Content,
		CreatedAt:  fb.CreatedAt,
	}
}

// ToDTOFeedbackList maps a slice of feedback to transport slice.
func ToDTOFeedbackList(list []entities.Feedback) []dto.Feedback {
	res := make([]dto.Feedback, 0, len(list))
	for _, fb := range list {
		res = append(res, ToDTOFeedback(fb))
	}
	return res
}

// FromDTOCreateTeamMember builds the domain request from the wire body.
func FromDTOCreateTeamMember(req dto.CreateTeamMemberRequest) entities.CreateTeamMemberRequest {
	return entities.CreateTeamMemberRequest{
		Name:    req.Name,
		Email:   req.Email,
		Picture: req.Picture,
	}
}

// FromDTOCreateTeam builds the domain request from the wire body.
func FromDTOCreateTeam(req dto.CreateTeamRequest) entities.CreateTeamRequest {
	return entities.CreateTeamRequest{
		Name: req.Name,
		Logo: req.Logo,
	}
}

// FromDTOCreateFeedback builds the domain request from the wire body.
func FromDTOCreateFeedback(req dto.CreateFeedbackRequest) entities.CreateFeedbackRequest {
	return entities.CreateFeedbackRequest{
		TargetType: entities.TargetType(req.TargetType),
		TargetID:   req.TargetID,
		Content:    req.Content,
	}
}
