package usecase

import (
	"context"
	"time"

	"coaching-app/internal/repository"
	"coaching-app/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamMemberUsecaseInterface
	TeamUsecaseInterface
	AssignmentUsecaseInterface
	FeedbackUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
