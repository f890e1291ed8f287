package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/user/dto"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type UpdateUserStatusCommand struct {
	UserID uint
	Status string
}

type UpdateUserStatusUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserStatusUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserStatusUseCase {
	return &UpdateUserStatusUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateUserStatusUseCase) Execute(ctx context.Context, cmd UpdateUserStatusCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := u.ChangeStatus(cmd.Status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user status", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to update user status")
	}

	uc.logger.Infow("user status changed", "user_id", u.ID(), "status", cmd.Status)
	return dto.ToUserDTO(u), nil
}
