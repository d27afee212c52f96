package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/codetrackr/internal/application/service"
	"github.com/khoahotran/codetrackr/internal/domain/user"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/auth"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type LoginUseCase struct {
	userRepo   user.Repository
	jwtSvc     *auth.JWTService
	tokenStore service.RefreshTokenStore
	refreshTTL time.Duration
	logger     logger.Logger
}

func NewLoginUseCase(
	repo user.Repository,
	jwtSvc *auth.JWTService,
	tokens service.RefreshTokenStore,
	refreshTTL time.Duration,
	log logger.Logger,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   repo,
		jwtSvc:     jwtSvc,
		tokenStore: tokens,
		refreshTTL: refreshTTL,
		logger:     log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	u, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		// Same response for unknown username and bad password.
		return nil, apperror.NewUnauthorized("username or password is incorrect", nil)
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return nil, apperror.NewUnauthorized("username or password is incorrect", nil)
	}

	access, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("failed to generate access token", err, zap.String("account_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	refresh, err := auth.NewRefreshToken()
	if err != nil {
		return nil, apperror.NewInternal("failed to generate refresh token", err)
	}
	if err := uc.tokenStore.Store(ctx, refresh, u.ID, uc.refreshTTL); err != nil {
		return nil, apperror.NewInternal("failed to store refresh token", err)
	}

	return &LoginOutput{AccessToken: access, RefreshToken: refresh}, nil
}
