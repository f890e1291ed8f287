package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type DeleteBuildListCommand struct {
	BuildListID uint
	RequesterID uint
	Role        authorization.UserRole
}

type DeleteBuildListUseCase struct {
	listRepo buildlist.Repository
	logger   logger.Interface
}

func NewDeleteBuildListUseCase(listRepo buildlist.Repository, logger logger.Interface) *DeleteBuildListUseCase {
	return &DeleteBuildListUseCase{listRepo: listRepo, logger: logger}
}

func (uc *DeleteBuildListUseCase) Execute(ctx context.Context, cmd DeleteBuildListCommand) error {
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

	if err := uc.listRepo.Delete(ctx, cmd.BuildListID); err != nil {
		uc.logger.Errorw("failed to delete build list", "error", err, "build_list_id", cmd.BuildListID)
		return errors.NewInternalError("failed to delete build list")
	}

	uc.logger.Infow("build list deleted", "build_list_id", cmd.BuildListID, "requester_id", cmd.RequesterID)
	return nil
}
