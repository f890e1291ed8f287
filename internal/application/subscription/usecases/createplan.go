package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/subscription/dto"
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/errors"
	"github.com/camber-app/camber/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name            string
	Slug            string
	PriceCents      int64
	MaxCars         int
	MaxBuildLists   int
	MaxItemsPerList int
}

type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	existing, err := uc.planRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		return nil, errors.NewInternalError("failed to check plan slug")
	}
	if existing != nil {
		return nil, errors.NewConflictError("plan slug already exists")
	}

	plan, err := subscription.NewPlan(cmd.Name, cmd.Slug, cmd.PriceCents,
		cmd.MaxCars, cmd.MaxBuildLists, cmd.MaxItemsPerList)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "slug", cmd.Slug)
		return nil, errors.NewInternalError("failed to create plan")
	}

	uc.logger.Infow("plan created", "plan_id", plan.ID(), "slug", plan.Slug())
	return dto.ToPlanDTO(plan), nil
}
