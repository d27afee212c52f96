package question

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/codetrackr/internal/domain/question"
)

type GetQuestionUseCase struct {
	questionRepo question.Repository
}

func NewGetQuestionUseCase(qRepo question.Repository) *GetQuestionUseCase {
	return &GetQuestionUseCase{questionRepo: qRepo}
}

type GetQuestionInput struct {
	QuestionID uuid.UUID
	OwnerID    uuid.UUID
}

type GetQuestionOutput struct {
	Question *question.Question
}

func (uc *GetQuestionUseCase) Execute(ctx context.Context, input GetQuestionInput) (*GetQuestionOutput, error) {
	q, err := uc.questionRepo.FindByID(ctx, input.QuestionID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetQuestionOutput{Question: q}, nil
}
