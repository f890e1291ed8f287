package usecases

import (
	"context"
	"fmt"

	"github.com/camber-app/camber/internal/application/buildlist/dto"
	"github.com/camber-app/camber/internal/application/subscription/services"
	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
	"github.com/camber-app/camber/internal/shared/services/markdown"
)

type CreateBuildListCommand struct {
	CarID       uint
	OwnerID     uint
	Name        string
	Description string
	Visibility  string
}

type CreateBuildListUseCase struct {
	listRepo buildlist.Repository
	carRepo  car.Repository
	limits   *services.LimitService
	markdown markdown.Service
	logger   logger.Interface
}

func NewCreateBuildListUseCase(
	listRepo buildlist.Repository,
	carRepo car.Repository,
	limits *services.LimitService,
	markdown markdown.Service,
	logger logger.Interface,
) *CreateBuildListUseCase {
	return &CreateBuildListUseCase{
		listRepo: listRepo,
		carRepo:  carRepo,
		limits:   limits,
		markdown: markdown,
		logger:   logger,
	}
}

func (uc *CreateBuildListUseCase) Execute(ctx context.Context, cmd CreateBuildListCommand) (*dto.BuildListDTO, error) {
	c, err := uc.carRepo.GetByID(ctx, cmd.CarID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load car")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("car not found")
	}
	if c.OwnerID() != cmd.OwnerID {
		return nil, errors.NewForbiddenError("not the owner of this car")
	}

	plan, err := uc.limits.EffectivePlan(ctx, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to resolve plan", "error", err, "user_id", cmd.OwnerID)
		return nil, errors.NewInternalError("failed to resolve plan")
	}
	count, err := uc.listRepo.CountByOwner(ctx, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewInternalError("failed to count build lists")
	}
	if !plan.AllowsBuildLists(count) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("plan %s allows at most %d build lists", plan.Slug(), plan.MaxBuildLists()))
	}

	list, err := buildlist.NewBuildList(cmd.CarID, cmd.OwnerID, cmd.Name, cmd.Description,
		buildlist.Visibility(cmd.Visibility))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if list.Description() != "" {
		html, err := uc.markdown.ToHTMLSanitized(list.Description())
		if err != nil {
			return nil, errors.NewInternalError("failed to render description")
		}
		list.SetDescriptionHTML(html)
	}

	if err := uc.listRepo.Create(ctx, list); err != nil {
		uc.logger.Errorw("failed to create build list", "error", err, "owner_id", cmd.OwnerID)
		return nil, errors.NewInternalError("failed to create build list")
	}

	uc.logger.Infow("build list created", "build_list_id", list.ID(), "owner_id", cmd.OwnerID)
	return dto.ToBuildListDTO(list), nil
}
