package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/user/dto"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type UpdateUserRoleCommand struct {
	UserID uint
	Role   string
}

type UpdateUserRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserRoleUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserRoleUseCase {
	return &UpdateUserRoleUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateUserRoleUseCase) Execute(ctx context.Context, cmd UpdateUserRoleCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}
	if err := u.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user role", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to update user role")
	}

	uc.logger.Infow("user role changed", "user_id", u.ID(), "role", cmd.Role)
	return dto.ToUserDTO(u), nil
}
