// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmailExists signals a team member email conflict.
	ErrEmailExists = errors.New("duplicate email")
	// ErrMemberNotFound signals a missing team member.
	ErrMemberNotFound = errors.New("team member not found")
	// ErrTeamNotFound signals a missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrFeedbackTargetNotFound signals feedback addressed to a missing target.
	ErrFeedbackTargetNotFound = errors.New("feedback target not found")
)
