package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/codetrackr/internal/domain/question"
)

type DeleteQuestionUseCase struct {
	questionRepo question.Repository
}

func NewDeleteQuestionUseCase(qRepo question.Repository) *DeleteQuestionUseCase {
	return &DeleteQuestionUseCase{questionRepo: qRepo}
}

type DeleteQuestionInput struct {
	QuestionID uuid.UUID
	OwnerID    uuid.UUID
}

// Execute removes the question; activities referencing it go with it via
// the store's cascade rule.
func (uc *DeleteQuestionUseCase) Execute(ctx context.Context, input DeleteQuestionInput) error {
	if err := uc.questionRepo.Delete(ctx, input.QuestionID, input.OwnerID); err != nil {
		return fmt.Errorf("delete question failed: %w", err)
	}
	return nil
}
