package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID      uint
	RequesterID uint
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	// Admins cannot remove their own account; another admin has to.
	if cmd.UserID == cmd.RequesterID {
		return errors.NewValidationError("cannot delete your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user for deletion", "error", err, "user_id", cmd.UserID)
		return errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", cmd.UserID)
		return errors.NewInternalError("failed to delete user")
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "deleted_by", cmd.RequesterID)
	return nil
}
