package activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/codetrackr/internal/domain/activity"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

// The feed always returns at most the 20 most recent rows.
const feedLimit = 20

type ListActivitiesUseCase struct {
	activityRepo activity.Repository
	logger       logger.Logger
}

func NewListActivitiesUseCase(aRepo activity.Repository, log logger.Logger) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{activityRepo: aRepo, logger: log}
}

type ListActivitiesInput struct {
	OwnerID uuid.UUID
}

type ListActivitiesOutput struct {
	Activities []*activity.FeedEntry
}

func (uc *ListActivitiesUseCase) Execute(ctx context.Context, input ListActivitiesInput) (*ListActivitiesOutput, error) {
	entries, err := uc.activityRepo.ListRecentByOwner(ctx, input.OwnerID, feedLimit)
	if err != nil {
		return nil, err
	}
	return &ListActivitiesOutput{Activities: entries}, nil
}
