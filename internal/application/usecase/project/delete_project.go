package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/codetrackr/internal/domain/project"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
}

func NewDeleteProjectUseCase(pRepo project.Repository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
	OwnerID   uuid.UUID
}

// Execute removes the project; activities referencing it go with it via
// the store's cascade rule.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.Delete(ctx, input.ProjectID, input.OwnerID); err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}
	return nil
}
