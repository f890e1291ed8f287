package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type RemoveItemCommand struct {
	BuildListID uint
	ItemID      uint
	RequesterID uint
	Role        authorization.UserRole
}

type RemoveItemUseCase struct {
	listRepo buildlist.Repository
	logger   logger.Interface
}

func NewRemoveItemUseCase(listRepo buildlist.Repository, logger logger.Interface) *RemoveItemUseCase {
	return &RemoveItemUseCase{listRepo: listRepo, logger: logger}
}

func (uc *RemoveItemUseCase) Execute(ctx context.Context, cmd RemoveItemCommand) error {
	list, err := uc.listRepo.GetByID(ctx, cmd.BuildListID)
	if err != nil {
		return errors.NewInternalError("failed to load build list")
	}
	if list == nil {
		return errors.NewNotFoundError("build list not found")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.RequesterID, cmd.Role, list.OwnerID()) {
		return errors.NewForbiddenError("not the owner of this build list")
	}

	if err := uc.listRepo.RemoveItem(ctx, cmd.BuildListID, cmd.ItemID); err != nil {
		return errors.NewNotFoundError("build list item not found")
	}
	return nil
}
