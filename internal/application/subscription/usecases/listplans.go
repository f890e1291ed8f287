package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/subscription/dto"
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/errors"
)

type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
}

func NewListPlansUseCase(planRepo subscription.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, activeOnly bool) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.NewInternalError("failed to list plans")
	}
	return dto.ToPlanDTOs(plans), nil
}
