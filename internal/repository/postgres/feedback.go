package postgres

import (
	"context"
	"errors"
	"fmt"

	"coaching-app/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertFeedbackQuery = `
INSERT INTO feedback(target_type, target_id, content)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	selectFeedbackQuery         = "SELECT id, target_type, target_id, content, created_at FROM feedback ORDER BY created_at DESC, id DESC"
	selectFeedbackByTargetQuery = `
SELECT id, target_type, target_id, content, created_at
FROM feedback
WHERE target_type=$1 AND target_id=$2
ORDER BY created_at DESC, id DESC`
)

// CreateFeedback verifies the target exists, inserts the feedback and
// returns it with the server-assigned id and timestamp.
func (p *Postgres) CreateFeedback(ctx context.Context, req entities.CreateFeedbackRequest) (*entities.Feedback, error) {
	existsQuery := teamExistsQuery
	if req.TargetType == entities.TargetMember {
		existsQuery = memberExistsQuery
	}

	var one int
	if err := p.db.QueryRow(ctx, existsQuery, req.TargetID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrFeedbackTargetNotFound
		}
		return nil, fmt.Errorf("target lookup: %w", err)
	}

	fb := entities.Feedback{
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Content:    req.Content,
	}
	if err := p.db.QueryRow(ctx, insertFeedbackQuery, req.TargetType, req.TargetID, req.Content).Scan(&fb.ID, &fb.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	p.log.Infow("feedback created", "id", fb.ID, "target_type", fb.TargetType, "target_id", fb.TargetID)
	return &fb, nil
}

// ListFeedback returns all feedback, newest first.
func (p *Postgres) ListFeedback(ctx context.Context) ([]entities.Feedback, error) {
	rows, err := p.db.Query(ctx, selectFeedbackQuery)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	return scanFeedback(rows)
}

// ListFeedbackByTarget returns feedback for one target, newest first.
func (p *Postgres) ListFeedbackByTarget(ctx context.Context, targetType entities.TargetType, targetID int64) ([]entities.Feedback, error) {
	rows, err := p.db.Query(ctx, selectFeedbackByTargetQuery, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("list feedback by target: %w", err)
	}
	defer rows.Close()

	return scanFeedback(rows)
}

func scanFeedback(rows pgx.Rows) ([]entities.Feedback, error) {
	fbs := make([]entities.Feedback, 0)
	for rows.Next() {
		var fb entities.Feedback
		if err := rows.Scan(&fb.ID, &fb.TargetType, &fb.TargetID, &fb.Content, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		fbs = append(fbs, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return fbs, nil
}
