package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/subscription/dto"
	"github.com/camber-app/camber/internal/application/subscription/services"
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/shared/errors"
)

type GetMySubscriptionUseCase struct {
	subRepo  subscription.Repository
	planRepo subscription.PlanRepository
	limits   *services.LimitService
}

func NewGetMySubscriptionUseCase(
	subRepo subscription.Repository,
	planRepo subscription.PlanRepository,
	limits *services.LimitService,
) *GetMySubscriptionUseCase {
	return &GetMySubscriptionUseCase{subRepo: subRepo, planRepo: planRepo, limits: limits}
}

// Execute returns the active subscription, or a synthetic free-tier
// view when the user has none.
func (uc *GetMySubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load subscription")
	}

	if sub == nil {
		plan, err := uc.limits.EffectivePlan(ctx, userID)
		if err != nil {
			return nil, errors.NewInternalError("failed to resolve plan")
		}
		return &dto.SubscriptionDTO{
			UserID: userID,
			Plan:   dto.ToPlanDTO(plan),
			Status: string(subscription.StatusActive),
		}, nil
	}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load plan")
	}
	return dto.ToSubscriptionDTO(sub, plan), nil
}
