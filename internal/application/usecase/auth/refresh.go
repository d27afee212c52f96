package auth

import (
	"context"
	"time"

	"github.com/khoahotran/codetrackr/internal/application/service"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/auth"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type RefreshUseCase struct {
	jwtSvc     *auth.JWTService
	tokenStore service.RefreshTokenStore
	refreshTTL time.Duration
	logger     logger.Logger
}

func NewRefreshUseCase(
	jwtSvc *auth.JWTService,
	tokens service.RefreshTokenStore,
	refreshTTL time.Duration,
	log logger.Logger,
) *RefreshUseCase {
	return &RefreshUseCase{
		jwtSvc:     jwtSvc,
		tokenStore: tokens,
		refreshTTL: refreshTTL,
		logger:     log,
	}
}

type RefreshInput struct {
	RefreshToken string
}

type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// Execute rotates the refresh token: the presented token is consumed and a
// new pair is issued.
func (uc *RefreshUseCase) Execute(ctx context.Context, input RefreshInput) (*RefreshOutput, error) {
	ownerID, err := uc.tokenStore.Consume(ctx, input.RefreshToken)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired refresh token", err)
	}

	access, err := uc.jwtSvc.GenerateToken(ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	refresh, err := auth.NewRefreshToken()
	if err != nil {
		return nil, apperror.NewInternal("failed to generate refresh token", err)
	}
	if err := uc.tokenStore.Store(ctx, refresh, ownerID, uc.refreshTTL); err != nil {
		return nil, apperror.NewInternal("failed to store refresh token", err)
	}

	return &RefreshOutput{AccessToken: access, RefreshToken: refresh}, nil
}
