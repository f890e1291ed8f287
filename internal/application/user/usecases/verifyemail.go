package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/user/dto"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type VerifyEmailCommand struct {
	Token string
}

type VerifyEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{userRepo: userRepo, logger: logger}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) (*dto.UserDTO, error) {
	if cmd.Token == "" {
		return nil, errors.NewValidationError("verification token is required")
	}

	u, err := uc.userRepo.GetByVerificationToken(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to look up verification token", "error", err)
		return nil, errors.NewInternalError("failed to look up verification token")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("verification token not found")
	}

	if err := u.VerifyEmail(cmd.Token); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist email verification", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to verify email")
	}

	uc.logger.Infow("email verified", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
