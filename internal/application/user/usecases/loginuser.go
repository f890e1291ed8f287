package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/user/dto"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/infrastructure/auth"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   *auth.JWTService
	logger   logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens *auth.JWTService,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*dto.LoginResultDTO, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, errors.NewInternalError("failed to look up user")
	}
	if u == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := u.Authenticate(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}
	if !u.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	return &dto.LoginResultDTO{
		User: dto.ToUserDTO(u),
		Tokens: &dto.AuthTokensDTO{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    pair.ExpiresIn,
		},
	}, nil
}
