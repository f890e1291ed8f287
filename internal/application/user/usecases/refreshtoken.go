package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/user/dto"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/infrastructure/auth"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   *auth.JWTService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, tokens *auth.JWTService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{userRepo: userRepo, tokens: tokens, logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthTokensDTO, error) {
	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewTokenInvalidError()
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, errors.NewTokenInvalidError()
	}

	// Re-read the user so role and status changes take effect on refresh.
	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user for refresh", "error", err, "user_id", claims.UserID)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil || !u.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	return &dto.AuthTokensDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
