package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/codetrackr/internal/application/service"
	"github.com/khoahotran/codetrackr/internal/domain/profile"
	"github.com/khoahotran/codetrackr/internal/domain/user"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/auth"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type RegisterUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	txManager   service.TransactionManager
	logger      logger.Logger
}

func NewRegisterUseCase(
	uRepo user.Repository,
	pRepo profile.Repository,
	tx service.TransactionManager,
	log logger.Logger,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:    uRepo,
		profileRepo: pRepo,
		txManager:   tx,
		logger:      log,
	}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
}

type RegisterOutput struct {
	AccountID uuid.UUID
	Username  string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if input.Password != input.Password2 {
		return nil, apperror.NewValidation(map[string]string{"password": "Passwords do not match."})
	}
	if err := auth.ValidatePasswordStrength(input.Password); err != nil {
		return nil, apperror.NewValidation(map[string]string{"password": err.Error()})
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	account := &user.Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	emptyProfile := &profile.Profile{
		OwnerID:   account.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The account and its empty profile commit together.
	err = uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Save(ctx, account); err != nil {
			return err
		}
		return uc.profileRepo.Save(ctx, emptyProfile)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("account registered", zap.String("account_id", account.ID.String()))
	return &RegisterOutput{AccountID: account.ID, Username: account.Username}, nil
}
