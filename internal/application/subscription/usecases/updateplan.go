package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/subscription/dto"
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID          uint
	Name            string
	PriceCents      int64
	MaxCars         int
	MaxBuildLists   int
	MaxItemsPerList int
	Active          *bool
}

type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load plan")
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	if err := plan.Update(cmd.Name, cmd.PriceCents, cmd.MaxCars, cmd.MaxBuildLists, cmd.MaxItemsPerList); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Active != nil {
		if *cmd.Active {
			plan.Activate()
		} else {
			plan.Deactivate()
		}
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", plan.ID())
		return nil, errors.NewInternalError("failed to update plan")
	}
	return dto.ToPlanDTO(plan), nil
}
