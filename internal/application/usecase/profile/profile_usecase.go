package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/codetrackr/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
}

func NewProfileUseCase(repo profile.Repository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteGetProfile never fails with NotFound: an empty profile is created
// on first read.
func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetOrCreate(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	OwnerID uuid.UUID
	Update  profile.Update
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.profileRepo.GetOrCreate(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	p.Apply(input.Update, time.Now().UTC())

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	return &UpdateProfileOutput{Profile: p}, nil
}
