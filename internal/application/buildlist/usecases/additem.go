package usecases

import (
	"context"
	"fmt"

	"github.com/camber-app/camber/internal/application/buildlist/dto"
	"github.com/camber-app/camber/internal/application/subscription/services"
	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type AddItemCommand struct {
	BuildListID uint
	RequesterID uint
	PartID      uint
	Note        string
}

type AddItemUseCase struct {
	listRepo buildlist.Repository
	partRepo part.Repository
	limits   *services.LimitService
	logger   logger.Interface
}

func NewAddItemUseCase(
	listRepo buildlist.Repository,
	partRepo part.Repository,
	limits *services.LimitService,
	logger logger.Interface,
) *AddItemUseCase {
	return &AddItemUseCase{
		listRepo: listRepo,
		partRepo: partRepo,
		limits:   limits,
		logger:   logger,
	}
}

func (uc *AddItemUseCase) Execute(ctx context.Context, cmd AddItemCommand) (*dto.BuildListItemDTO, error) {
	list, err := uc.listRepo.GetByID(ctx, cmd.BuildListID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load build list")
	}
	if list == nil {
		return nil, errors.NewNotFoundError("build list not found")
	}
	if list.OwnerID() != cmd.RequesterID {
		return nil, errors.NewForbiddenError("not the owner of this build list")
	}
	if list.HasPart(cmd.PartID) {
		return nil, errors.NewConflictError("part is already on this build list")
	}

	p, err := uc.partRepo.GetByID(ctx, cmd.PartID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load part")
	}
	if p == nil {
		return nil, errors.NewNotFoundError("part not found")
	}

	plan, err := uc.limits.EffectivePlan(ctx, cmd.RequesterID)
	if err != nil {
		uc.logger.Errorw("failed to resolve plan", "error", err, "user_id", cmd.RequesterID)
		return nil, errors.NewInternalError("failed to resolve plan")
	}
	count, err := uc.listRepo.CountItems(ctx, cmd.BuildListID)
	if err != nil {
		return nil, errors.NewInternalError("failed to count items")
	}
	if !plan.AllowsItems(count) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("plan %s allows at most %d items per build list", plan.Slug(), plan.MaxItemsPerList()))
	}

	item, err := buildlist.NewItem(cmd.BuildListID, cmd.PartID, cmd.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.listRepo.AddItem(ctx, item); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("part is already on this build list")
		}
		uc.logger.Errorw("failed to add item", "error", err, "build_list_id", cmd.BuildListID)
		return nil, errors.NewInternalError("failed to add item")
	}

	return dto.ToBuildListItemDTO(item), nil
}
