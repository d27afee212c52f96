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

type CreateProjectUseCase struct {
	projectRepo  project.Repository
	activityRepo activity.Repository
	txManager    service.TransactionManager
	events       service.EventPublisher
	logger       logger.Logger
}

func NewCreateProjectUseCase(
	pRepo project.Repository,
	aRepo activity.Repository,
	tx service.TransactionManager,
	events service.EventPublisher,
	log logger.Logger,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo:  pRepo,
		activityRepo: aRepo,
		txManager:    tx,
		events:       events,
		logger:       log,
	}
}

type CreateProjectInput struct {
	OwnerID      uuid.UUID
	Title        string
	Description  string
	Status       project.Status
	GithubURL    *string
	LiveURL      *string
	Technologies string
	Notes        string
	StartDate    *time.Time
	EndDate      *time.Time
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if input.Status == "" {
		input.Status = project.StatusPlanning
	}

	now := time.Now().UTC()
	p := &project.Project{
		ID:           uuid.New(),
		OwnerID:      input.OwnerID,
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		GithubURL:    input.GithubURL,
		LiveURL:      input.LiveURL,
		Technologies: input.Technologies,
		Notes:        input.Notes,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.Validate(); err != nil {
		return nil, asValidation(err)
	}

	act := activity.FromProjectCreated(p, now)

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.projectRepo.Save(ctx, p); err != nil {
			return err
		}
		return uc.activityRepo.Save(ctx, act)
	})
	if err != nil {
		return nil, err
	}

	if uc.events != nil {
		if err := uc.events.PublishActivity(ctx, act); err != nil {
			uc.logger.Warn("failed to publish activity event", zap.Error(err))
		}
	}

	return &CreateProjectOutput{Project: p}, nil
}
