package question

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/codetrackr/internal/domain/question"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type ListQuestionsUseCase struct {
	questionRepo question.Repository
	logger       logger.Logger
}

func NewListQuestionsUseCase(qRepo question.Repository, log logger.Logger) *ListQuestionsUseCase {
	return &ListQuestionsUseCase{questionRepo: qRepo, logger: log}
}

type ListQuestionsInput struct {
	OwnerID uuid.UUID
}

type ListQuestionsOutput struct {
	Questions []*question.Question
}

func (uc *ListQuestionsUseCase) Execute(ctx context.Context, input ListQuestionsInput) (*ListQuestionsOutput, error) {
	questions, err := uc.questionRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &ListQuestionsOutput{Questions: questions}, nil
}
