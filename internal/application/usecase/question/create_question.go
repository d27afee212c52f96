package question

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/codetrackr/internal/application/service"
	"github.com/khoahotran/codetrackr/internal/domain/activity"
	"github.com/khoahotran/codetrackr/internal/domain/question"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type CreateQuestionUseCase struct {
	questionRepo question.Repository
	activityRepo activity.Repository
	txManager    service.TransactionManager
	events       service.EventPublisher
	logger       logger.Logger
}

func NewCreateQuestionUseCase(
	qRepo question.Repository,
	aRepo activity.Repository,
	tx service.TransactionManager,
	events service.EventPublisher,
	log logger.Logger,
) *CreateQuestionUseCase {
	return &CreateQuestionUseCase{
		questionRepo: qRepo,
		activityRepo: aRepo,
		txManager:    tx,
		events:       events,
		logger:       log,
	}
}

type CreateQuestionInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Difficulty  question.Difficulty
	Status      question.Status
	Platform    string
	ProblemURL  *string
	SolutionURL *string
	Notes       string
	TimeSpent   int
}

type CreateQuestionOutput struct {
	Question *question.Question
}

func (uc *CreateQuestionUseCase) Execute(ctx context.Context, input CreateQuestionInput) (*CreateQuestionOutput, error) {
	if input.Difficulty == "" {
		input.Difficulty = question.DifficultyEasy
	}
	if input.Status == "" {
		input.Status = question.StatusNotStarted
	}

	now := time.Now().UTC()
	q := &question.Question{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Status:      input.Status,
		Platform:    input.Platform,
		ProblemURL:  input.ProblemURL,
		SolutionURL: input.SolutionURL,
		Notes:       input.Notes,
		TimeSpent:   input.TimeSpent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := q.Validate(); err != nil {
		return nil, asValidation(err)
	}

	act := activity.FromQuestionCreated(q, now)

	// Question and derived activity commit together or not at all.
	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.questionRepo.Save(ctx, q); err != nil {
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

	return &CreateQuestionOutput{Question: q}, nil
}
