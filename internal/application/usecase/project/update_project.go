package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/codetrackr/internal/application/service"
	"github.com/khoahotran/codetrackr/internal/domain/activity"
	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo  project.Repository
	activityRepo activity.Repository
	txManager    service.TransactionManager
	events       service.EventPublisher
	logger       logger.Logger
}

func NewUpdateProjectUseCase(
	pRepo project.Repository,
	aRepo activity.Repository,
	tx service.TransactionManager,
	events service.EventPublisher,
	log logger.Logger,
) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo:  pRepo,
		activityRepo: aRepo,
		txManager:    tx,
		events:       events,
		logger:       log,
	}
}

type UpdateProjectInput struct {
	ProjectID uuid.UUID
	OwnerID   uuid.UUID
	Update    project.Update
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	// Status comparison runs against the stored state, not the payload.
	prevStatus := p.Status

	now := time.Now().UTC()
	p.Apply(input.Update, now)
	if err := p.Validate(); err != nil {
		return nil, asValidation(err)
	}

	act := activity.FromProjectStatusChange(prevStatus, p, now)

	err = uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.projectRepo.Update(ctx, p); err != nil {
			return err
		}
		if act == nil {
			return nil
		}
		return uc.activityRepo.Save(ctx, act)
	})
	if err != nil {
		return nil, err
	}

	if act != nil && uc.events != nil {
		if err := uc.events.PublishActivity(ctx, act); err != nil {
			uc.logger.Warn("failed to publish activity event", zap.Error(err))
		}
	}

	return &UpdateProjectOutput{Project: p}, nil
}
