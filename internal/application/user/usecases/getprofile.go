package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/user/dto"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/shared/errors"
)

type GetProfileUseCase struct {
	userRepo user.Repository
}

func NewGetProfileUseCase(userRepo user.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return dto.ToUserDTO(u), nil
}
