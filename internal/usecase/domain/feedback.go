package domain

import (
	"context"
	"fmt"

	"coaching-app/internal/entities"
)

// CreateFeedback validates input and creates feedback.
func (u *Usecase) CreateFeedback(ctx context.Context, req entities.CreateFeedbackRequest) (*entities.Feedback, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", entities.ErrInvalidArgument)
	}
	if !req.TargetType.Valid() {
		return nil, fmt.Errorf("%w: target_type must be 'team' or 'member'", entities.ErrInvalidArgument)
	}
	if req.TargetID <= 0 {
		return nil, fmt.Errorf("%w: target_id must be positive", entities.ErrInvalidArgument)
	}

	return u.repo.CreateFeedback(ctx, req)
}

// ListFeedback returns all feedback, newest first.
func (u *Usecase) ListFeedback(ctx context.Context) ([]entities.Feedback, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListFeedback(ctx)
}

// FeedbackByTarget returns feedback for one target, newest first.
func (u *Usecase) FeedbackByTarget(ctx context.Context, targetType entities.TargetType, targetID int64) ([]entities.Feedback, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !targetType.Valid() {
		return nil, fmt.Errorf("%w: target_type must be 'team' or 'member'", entities.ErrInvalidArgument)
	}
	if targetID <= 0 {
		return nil, fmt.Errorf("%w: target_id must be positive", entities.ErrInvalidArgument)
	}

	return u.repo.ListFeedbackByTarget(ctx, targetType, targetID)
}
