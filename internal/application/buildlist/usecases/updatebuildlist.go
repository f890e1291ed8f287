package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/buildlist/dto"
	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
	"github.com/camber-app/camber/internal/shared/services/markdown"
)

type UpdateBuildListCommand struct {
	BuildListID uint
	RequesterID uint
	Role        authorization.UserRole
	Name        string
	Description string
	Visibility  string
}

type UpdateBuildListUseCase struct {
	listRepo buildlist.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewUpdateBuildListUseCase(listRepo buildlist.Repository, markdown markdown.Service, logger logger.Interface) *UpdateBuildListUseCase {
	return &UpdateBuildListUseCase{listRepo: listRepo, markdown: markdown, logger: logger}
}

func (uc *UpdateBuildListUseCase) Execute(ctx context.Context, cmd UpdateBuildListCommand) (*dto.BuildListDTO, error) {
	list, err := uc.listRepo.GetByID(ctx, cmd.BuildListID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load build list")
	}
	if list == nil {
		return nil, errors.NewNotFoundError("build list not found")
	}
	if !authorization.CanAccessResourceByOwnerID(cmd.RequesterID, cmd.Role, list.OwnerID()) {
		return nil, errors.NewForbiddenError("not the owner of this build list")
	}

	if err := list.Update(cmd.Name, cmd.Description, buildlist.Visibility(cmd.Visibility)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	html := ""
	if list.Description() != "" {
		html, err = uc.markdown.ToHTMLSanitized(list.Description())
		if err != nil {
			return nil, errors.NewInternalError("failed to render description")
		}
	}
	list.SetDescriptionHTML(html)

	if err := uc.listRepo.Update(ctx, list); err != nil {
		uc.logger.Errorw("failed to update build list", "error", err, "build_list_id", list.ID())
		return nil, errors.NewInternalError("failed to update build list")
	}
	return dto.ToBuildListDTO(list), nil
}
