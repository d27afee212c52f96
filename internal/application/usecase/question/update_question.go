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

type UpdateQuestionUseCase struct {
	questionRepo question.Repository
	activityRepo activity.Repository
	txManager    service.TransactionManager
	events       service.EventPublisher
	logger       logger.Logger
}

func NewUpdateQuestionUseCase(
	qRepo question.Repository,
	aRepo activity.Repository,
	tx service.TransactionManager,
	events service.EventPublisher,
	log logger.Logger,
) *UpdateQuestionUseCase {
	return &UpdateQuestionUseCase{
		questionRepo: qRepo,
		activityRepo: aRepo,
		txManager:    tx,
		events:       events,
		logger:       log,
	}
}

type UpdateQuestionInput struct {
	QuestionID uuid.UUID
	OwnerID    uuid.UUID
	Update     question.Update
}

type UpdateQuestionOutput struct {
	Question *question.Question
}

func (uc *UpdateQuestionUseCase) Execute(ctx context.Context, input UpdateQuestionInput) (*UpdateQuestionOutput, error) {
	q, err := uc.questionRepo.FindByID(ctx, input.QuestionID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	// Status comparison runs against the stored state, not the payload.
	prevStatus := q.Status

	now := time.Now().UTC()
	q.Apply(input.Update, now)
	if err := q.Validate(); err != nil {
		return nil, asValidation(err)
	}

	act := activity.FromQuestionStatusChange(prevStatus, q, now)

	err = uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.questionRepo.Update(ctx, q); err != nil {
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

	return &UpdateQuestionOutput{Question: q}, nil
}
